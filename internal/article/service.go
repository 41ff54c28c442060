// Package article 读者站点、记者工作台和后台审核的文章业务
package article

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	notifmodel "newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/internal/notification"
	"newsbangla24/portal/pkg/email"
	"newsbangla24/portal/pkg/response"
)

// Actor 发起操作的用户
type Actor struct {
	ID   uint
	Role string
}

// IsModerator 管理员或编辑
func (a Actor) IsModerator() bool {
	return user.IsModeratorRole(a.Role)
}

// Options 审核和发布时的外部依赖，零值字段使用空实现
type Options struct {
	Notifier notification.Notifier
	Mailer   email.Sender
	Events   event.Publisher
	Clock    clockwork.Clock
	// SiteURL 前台地址，用于通知和邮件中的链接
	SiteURL string
}

type ArticleService struct {
	repo     Repository
	notifier notification.Notifier
	mailer   email.Sender
	events   event.Publisher
	clock    clockwork.Clock
	siteURL  string
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, *notifmodel.Notification) error { return nil }

func NewArticleService(repo Repository, opts Options) *ArticleService {
	s := &ArticleService{
		repo:     repo,
		notifier: opts.Notifier,
		mailer:   opts.Mailer,
		events:   opts.Events,
		clock:    opts.Clock,
		siteURL:  opts.SiteURL,
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if s.mailer == nil {
		s.mailer = email.NoopSender{}
	}
	if s.events == nil {
		s.events = event.NoopPublisher{}
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	return s
}

// dayOf 阅读量按 UTC 自然日聚合
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ArticleService) load(ctx context.Context, id uint) (*article.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, response.NewNotFound("article not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load article", err)
	}
	return a, nil
}

// ===== 投影 =====

func categoryRef(c category.Category, lang locale.Lang) *CategoryRef {
	return &CategoryRef{ID: c.ID, Slug: c.Slug, Name: locale.Pick(c.Name, lang), Color: c.Color}
}

func summaryOf(a *article.Article, cats map[uint]category.Category, authors map[uint]user.User, lang locale.Lang) Summary {
	sum := Summary{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          locale.Pick(a.Title, lang),
		Excerpt:        locale.Pick(a.Excerpt, lang),
		CoverImage:     a.CoverImage,
		IsFeatured:     a.IsFeatured,
		IsBreaking:     a.IsBreaking,
		ViewCount:      a.ViewCount,
		ViewLabel:      locale.FormatNumber(a.ViewCount, lang),
		CommentCount:   a.CommentCount,
		ReadingMinutes: a.ReadingMinutes,
		ReadingTime:    locale.ReadingTime(a.ReadingMinutes, lang),
		PublishedAt:    a.PublishedAt,
	}
	if a.PublishedAt != nil {
		sum.PublishedLabel = locale.FormatDate(*a.PublishedAt, lang)
	}
	if c, ok := cats[a.CategoryID]; ok {
		sum.Category = categoryRef(c, lang)
	}
	if u, ok := authors[a.AuthorID]; ok {
		sum.Author = &AuthorRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	}
	return sum
}

// project 批量加载栏目和作者后按语言投影
func (s *ArticleService) project(ctx context.Context, articles []article.Article, lang locale.Lang) ([]Summary, error) {
	catIDs := make([]uint, 0, len(articles))
	authorIDs := make([]uint, 0, len(articles))
	for i := range articles {
		catIDs = append(catIDs, articles[i].CategoryID)
		authorIDs = append(authorIDs, articles[i].AuthorID)
	}

	cats, err := s.repo.CategoriesByID(ctx, catIDs)
	if err != nil {
		return nil, response.NewInternal("failed to load categories", err)
	}
	authors, err := s.repo.AuthorsByID(ctx, authorIDs)
	if err != nil {
		return nil, response.NewInternal("failed to load authors", err)
	}

	out := make([]Summary, 0, len(articles))
	for i := range articles {
		out = append(out, summaryOf(&articles[i], cats, authors, lang))
	}
	return out, nil
}

func tagRefs(tags []article.Tag, lang locale.Lang) []TagRef {
	out := make([]TagRef, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagRef{ID: t.ID, Slug: t.Slug, Name: locale.Pick(t.Name, lang)})
	}
	return out
}
