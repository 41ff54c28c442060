package article

import (
	"context"
	"errors"
	"slices"
	"strings"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/pkg/response"
)

const (
	homeFeatured   = 5
	homeBreaking   = 5
	homeLatest     = 10
	homePerSection = 4
	relatedLimit   = 4
	trendingLimit  = 10
	maxTrendDays   = 90
)

var published = []string{article.StatusPublished}

func (s *ArticleService) listPublished(ctx context.Context, q Query, lang locale.Lang) ([]Summary, error) {
	q.Statuses = published
	articles, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}
	return s.project(ctx, articles, lang)
}

// Home 首页：头条、突发、最新和各一级栏目版块
func (s *ArticleService) Home(ctx context.Context, lang locale.Lang) (*HomeResponse, error) {
	home := &HomeResponse{Lang: string(lang)}

	var err error
	if home.Featured, err = s.listPublished(ctx, Query{Featured: true, Limit: homeFeatured}, lang); err != nil {
		return nil, err
	}
	if home.Breaking, err = s.listPublished(ctx, Query{Breaking: true, Limit: homeBreaking}, lang); err != nil {
		return nil, err
	}
	if home.Latest, err = s.listPublished(ctx, Query{Limit: homeLatest}, lang); err != nil {
		return nil, err
	}

	cats, err := s.repo.TopCategories(ctx)
	if err != nil {
		return nil, response.NewInternal("failed to load categories", err)
	}
	home.Sections = make([]CategorySection, 0, len(cats))
	for _, c := range cats {
		items, err := s.listPublished(ctx, Query{CategoryIDs: []uint{c.ID}, Limit: homePerSection}, lang)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}
		home.Sections = append(home.Sections, CategorySection{Category: *categoryRef(c, lang), Articles: items})
	}
	return home, nil
}

// List 已发布文章列表，支持栏目、标签、关键字和排序
func (s *ArticleService) List(ctx context.Context, q ListQuery, lang locale.Lang) (*response.PageData, error) {
	query := Query{
		Statuses: published,
		TagSlug:  strings.TrimSpace(q.Tag),
		Q:        strings.TrimSpace(q.Q),
		Sort:     q.Sort,
	}
	if q.Category != "" {
		ids, err := s.repo.CategoryIDsBySlug(ctx, q.Category)
		if errors.Is(err, ErrCategoryNotFound) {
			return nil, response.NewNotFound("category not found")
		}
		if err != nil {
			return nil, response.NewInternal("failed to load category", err)
		}
		query.CategoryIDs = ids
	}

	page, pageSize := listing.Normalize(q.Page, q.PageSize)
	query.Offset = (page - 1) * pageSize
	query.Limit = pageSize

	articles, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}
	items, err := s.project(ctx, articles, lang)
	if err != nil {
		return nil, err
	}

	p := listing.Paginate(total, page, pageSize)
	return &response.PageData{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}, nil
}

// Detail 已发布文章详情，同时计入阅读量；userID 为 0 表示游客
func (s *ArticleService) Detail(ctx context.Context, slug string, lang locale.Lang, userID uint) (*Detail, error) {
	a, err := s.repo.FindBySlug(ctx, slug)
	if errors.Is(err, ErrNotFound) || (err == nil && !a.IsPublished()) {
		return nil, response.NewNotFound("article not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load article", err)
	}

	if err := s.repo.RecordView(ctx, a.ID, dayOf(s.clock.Now())); err != nil {
		return nil, response.NewInternal("failed to record view", err)
	}
	a.ViewCount++

	items, err := s.project(ctx, []article.Article{*a}, lang)
	if err != nil {
		return nil, err
	}
	related, err := s.listPublished(ctx, Query{CategoryIDs: []uint{a.CategoryID}, ExcludeID: a.ID, Limit: relatedLimit}, lang)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Summary: items[0],
		Content: locale.Pick(a.Content, lang),
		Tags:    tagRefs(a.Tags, lang),
		Related: related,
		Lang:    string(lang),
	}
	if userID != 0 {
		ids, err := s.repo.BookmarkedIDs(ctx, userID)
		if err != nil {
			return nil, response.NewInternal("failed to load bookmarks", err)
		}
		detail.Bookmark = slices.Contains(ids, a.ID)
	}
	return detail, nil
}

// Trending 窗口期内阅读量最高的文章，days 默认 7，最多 90
func (s *ArticleService) Trending(ctx context.Context, days int, lang locale.Lang) ([]TrendingItem, error) {
	if days <= 0 {
		days = 7
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	since := dayOf(s.clock.Now()).AddDate(0, 0, -(days - 1))

	rows, err := s.repo.Trending(ctx, since, trendingLimit)
	if err != nil {
		return nil, response.NewInternal("failed to load trending articles", err)
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ArticleID)
	}
	articles, err := s.ordered(ctx, ids)
	if err != nil {
		return nil, err
	}
	summaries, err := s.project(ctx, articles, lang)
	if err != nil {
		return nil, err
	}

	views := make(map[uint]int64, len(rows))
	for _, row := range rows {
		views[row.ArticleID] = row.Views
	}
	out := make([]TrendingItem, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, TrendingItem{Summary: sum, WindowViews: views[sum.ID]})
	}
	return out, nil
}

// ordered 按 ids 的顺序返回已发布文章
func (s *ArticleService) ordered(ctx context.Context, ids []uint) ([]article.Article, error) {
	articles, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, response.NewInternal("failed to load articles", err)
	}
	byID := make(map[uint]article.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}
	out := make([]article.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok && a.IsPublished() {
			out = append(out, a)
		}
	}
	return out, nil
}

// ToggleBookmark 收藏或取消收藏已发布文章
func (s *ArticleService) ToggleBookmark(ctx context.Context, userID, articleID uint) (*BookmarkResult, error) {
	a, err := s.load(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished() {
		return nil, response.NewNotFound("article not found")
	}

	on, err := s.repo.ToggleBookmark(ctx, userID, articleID)
	if err != nil {
		return nil, response.NewInternal("failed to update bookmark", err)
	}
	return &BookmarkResult{ArticleID: articleID, Bookmarked: on}, nil
}

// Bookmarks 收藏列表，最近收藏的在前
func (s *ArticleService) Bookmarks(ctx context.Context, userID uint, lang locale.Lang) ([]Summary, error) {
	ids, err := s.repo.BookmarkedIDs(ctx, userID)
	if err != nil {
		return nil, response.NewInternal("failed to load bookmarks", err)
	}
	articles, err := s.ordered(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, articles, lang)
}

// Tags 全部标签
func (s *ArticleService) Tags(ctx context.Context, lang locale.Lang) ([]TagRef, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, response.NewInternal("failed to load tags", err)
	}
	return tagRefs(tags, lang), nil
}
