package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/pkg/response"
)

const maxSlugAttempts = 50

// 记者稿件列表的排序键
var ownSorts = map[string]listing.LessFunc[article.Article]{
	"updated": func(a, b article.Article) bool { return a.UpdatedAt.Before(b.UpdatedAt) },
	"created": func(a, b article.Article) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"title": func(a, b article.Article) bool {
		return locale.Pick(a.Title, locale.Default) < locale.Pick(b.Title, locale.Default)
	},
	"views":  func(a, b article.Article) bool { return a.ViewCount < b.ViewCount },
	"status": func(a, b article.Article) bool { return a.Status < b.Status },
}

// CalendarResponse 记者稿件月历
type CalendarResponse struct {
	Year  int                                  `json:"year"`
	Month int                                  `json:"month"`
	Days  []listing.CalendarDay[article.Article] `json:"days"`
}

// OwnList 记者自己的稿件，在内存中按状态、关键字过滤并排序
func (s *ArticleService) OwnList(ctx context.Context, authorID uint, q OwnListQuery) ([]article.Article, error) {
	articles, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}

	if q.Status != "" {
		filtered := articles[:0]
		for _, a := range articles {
			if a.Status == q.Status {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}
	articles = listing.Filter(articles, q.Q, func(a article.Article) []string {
		return a.SearchFields()
	})

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = "-updated"
	}
	return listing.Sort(articles, sortKey, ownSorts), nil
}

// uniqueSlug 由英文标题生成 slug，冲突时追加 -2、-3…
func (s *ArticleService) uniqueSlug(ctx context.Context, title locale.Localized, excludeID uint) (string, error) {
	base := Slugify(title.En)
	if base == "" {
		base = Slugify(title.Bn)
	}
	if base == "" {
		base = randomSlug()
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		exists, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return randomSlug(), nil
}

func trimLocalized(l locale.Localized) locale.Localized {
	return locale.Localized{Bn: strings.TrimSpace(l.Bn), En: strings.TrimSpace(l.En)}
}

// applyRequest 校验并写入稿件内容，缺省摘要由正文生成
func (s *ArticleService) applyRequest(ctx context.Context, a *article.Article, req ArticleRequest) error {
	title := trimLocalized(req.Title)
	if title.IsEmpty() {
		return response.NewInvalid("title is required in Bengali or English")
	}
	if req.CategoryID == 0 {
		return response.NewInvalid("field 'category_id' is required")
	}
	exists, err := s.repo.CategoryExists(ctx, req.CategoryID)
	if err != nil {
		return response.NewInternal("failed to check category", err)
	}
	if !exists {
		return response.NewInvalid("category does not exist")
	}

	excerpt := trimLocalized(req.Excerpt)
	if excerpt.Bn == "" && req.Content.Bn != "" {
		excerpt.Bn = Excerpt(req.Content.Bn)
	}
	if excerpt.En == "" && req.Content.En != "" {
		excerpt.En = Excerpt(req.Content.En)
	}

	a.Title = title
	a.Excerpt = excerpt
	a.Content = req.Content
	a.CoverImage = strings.TrimSpace(req.CoverImage)
	a.CategoryID = req.CategoryID
	a.ReadingMinutes = ReadingMinutes(req.Content.Bn, req.Content.En)
	return nil
}

// Create 新建草稿
func (s *ArticleService) Create(ctx context.Context, authorID uint, req ArticleRequest) (*article.Article, error) {
	a := &article.Article{AuthorID: authorID, Status: article.StatusDraft}
	if err := s.applyRequest(ctx, a, req); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, a.Title, 0)
	if err != nil {
		return nil, response.NewInternal("failed to generate slug", err)
	}
	a.Slug = slug

	if err := s.repo.Create(ctx, a, req.TagIDs); err != nil {
		return nil, response.NewInternal("failed to create article", err)
	}
	return a, nil
}

// GetOwn 作者本人或管理员/编辑可查看
func (s *ArticleService) GetOwn(ctx context.Context, actor Actor, id uint) (*article.Article, error) {
	a, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.AuthorID != actor.ID && !actor.IsModerator() {
		return nil, response.NewForbidden("you can only access your own articles")
	}
	return a, nil
}

func (s *ArticleService) editable(ctx context.Context, actor Actor, id uint) (*article.Article, error) {
	a, err := s.GetOwn(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !a.IsEditable() {
		return nil, response.NewForbidden(fmt.Sprintf("article in status '%s' cannot be changed", a.Status))
	}
	return a, nil
}

// Update 仅草稿和被驳回的稿件可修改
func (s *ArticleService) Update(ctx context.Context, actor Actor, id uint, req ArticleRequest) (*article.Article, error) {
	a, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyRequest(ctx, a, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a, req.TagIDs); err != nil {
		return nil, response.NewInternal("failed to update article", err)
	}
	return a, nil
}

// Delete 仅草稿和被驳回的稿件可删除
func (s *ArticleService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.editable(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternal("failed to delete article", err)
	}
	return nil
}

// Submit 提交审核；定时时间必须晚于当前时间
func (s *ArticleService) Submit(ctx context.Context, actor Actor, id uint, req SubmitRequest) (*article.Article, error) {
	a, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.ScheduledAt != nil && !req.ScheduledAt.After(s.clock.Now()) {
		return nil, response.NewInvalid("scheduled_at must be in the future")
	}

	a.Status = article.StatusPending
	a.ScheduledAt = req.ScheduledAt
	if err := s.repo.Update(ctx, a, nil); err != nil {
		return nil, response.NewInternal("failed to submit article", err)
	}
	return a, nil
}

// Calendar 记者稿件月历；year/month 为 0 时取当前月份
func (s *ArticleService) Calendar(ctx context.Context, authorID uint, year, month int) (*CalendarResponse, error) {
	now := s.clock.Now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, response.NewInvalid("month must be between 1 and 12")
	}

	articles, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}
	days := listing.BuildMonth(year, time.Month(month), time.UTC, articles, func(a article.Article) time.Time {
		return a.CalendarDate()
	})
	return &CalendarResponse{Year: year, Month: month, Days: days}, nil
}
