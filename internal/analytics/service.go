// Package analytics 记者和后台的统计面板
package analytics

import (
	"context"
	"time"

	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/pkg/response"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultDays = 30
	MaxDays     = 365

	topArticles   = 5
	topCategories = 7
	topReporters  = 5
)

var roles = []string{user.RoleAdmin, user.RoleEditor, user.RoleReporter, user.RoleReader}

type AnalyticsService struct {
	repo  Repository
	clock clockwork.Clock
}

func NewAnalyticsService(repo Repository, clock clockwork.Clock) *AnalyticsService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AnalyticsService{repo: repo, clock: clock}
}

// NormalizeDays 窗口天数限制在 1..365，非正数取 30
func NormalizeDays(days int) int {
	switch {
	case days < 1:
		return DefaultDays
	case days > MaxDays:
		return MaxDays
	}
	return days
}

// window 返回窗口第一天（UTC 零点），窗口包含今天
func (s *AnalyticsService) window(days int) time.Time {
	now := s.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(days - 1))
}

// FillSeries 从 since 开始连续 days 天，没有记录的日期补 0
func FillSeries(rows []DayViews, since time.Time, days int, lang locale.Lang) []DayPoint {
	byDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC().Format(time.DateOnly)] += r.Views
	}

	series := make([]DayPoint, 0, days)
	for i := 0; i < days; i++ {
		d := since.AddDate(0, 0, i)
		key := d.Format(time.DateOnly)
		series = append(series, DayPoint{
			Date:  key,
			Label: locale.FormatDate(d, lang),
			Views: byDay[key],
		})
	}
	return series
}

// withZeros 保证每个键都出现，返回计数总和
func withZeros(counts map[string]int64, keys []string) (map[string]int64, int64) {
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[k] = 0
	}
	var total int64
	for k, v := range counts {
		out[k] = v
		total += v
	}
	return out, total
}

func topArticlesOf(rows []ArticleRow, lang locale.Lang) []TopArticle {
	out := make([]TopArticle, 0, len(rows))
	for _, r := range rows {
		out = append(out, TopArticle{
			ID:     r.ID,
			Slug:   r.Slug,
			Title:  locale.Pick(r.Title, lang),
			Status: r.Status,
			Views:  r.ViewCount,
		})
	}
	return out
}

// Reporter 记者本人的统计
func (s *AnalyticsService) Reporter(ctx context.Context, authorID uint, days int, lang locale.Lang) (*ReporterResponse, error) {
	days = NormalizeDays(days)
	since := s.window(days)

	counts, err := s.repo.StatusCounts(ctx, authorID)
	if err != nil {
		return nil, response.NewInternal("failed to count articles", err)
	}
	views, err := s.repo.TotalViews(ctx, authorID)
	if err != nil {
		return nil, response.NewInternal("failed to sum views", err)
	}
	approved, err := s.repo.CommentCount(ctx, authorID, comment.StatusApproved)
	if err != nil {
		return nil, response.NewInternal("failed to count comments", err)
	}
	top, err := s.repo.TopArticles(ctx, authorID, topArticles)
	if err != nil {
		return nil, response.NewInternal("failed to load top articles", err)
	}
	daily, err := s.repo.DailyViews(ctx, authorID, since)
	if err != nil {
		return nil, response.NewInternal("failed to load daily views", err)
	}

	byStatus, total := withZeros(counts, article.Statuses)
	return &ReporterResponse{
		Days:             days,
		ArticlesByStatus: byStatus,
		TotalArticles:    total,
		TotalViews:       views,
		ApprovedComments: approved,
		TopArticles:      topArticlesOf(top, lang),
		Series:           FillSeries(daily, since, days, lang),
	}, nil
}

// Admin 全站统计
func (s *AnalyticsService) Admin(ctx context.Context, days int, lang locale.Lang) (*AdminResponse, error) {
	days = NormalizeDays(days)
	since := s.window(days)

	counts, err := s.repo.StatusCounts(ctx, 0)
	if err != nil {
		return nil, response.NewInternal("failed to count articles", err)
	}
	roleCounts, err := s.repo.RoleCounts(ctx)
	if err != nil {
		return nil, response.NewInternal("failed to count users", err)
	}
	pending, err := s.repo.CommentCount(ctx, 0, comment.StatusPending)
	if err != nil {
		return nil, response.NewInternal("failed to count comments", err)
	}
	mediaCount, err := s.repo.MediaCount(ctx)
	if err != nil {
		return nil, response.NewInternal("failed to count media", err)
	}
	views, err := s.repo.TotalViews(ctx, 0)
	if err != nil {
		return nil, response.NewInternal("failed to sum views", err)
	}
	daily, err := s.repo.DailyViews(ctx, 0, since)
	if err != nil {
		return nil, response.NewInternal("failed to load daily views", err)
	}
	cats, err := s.repo.TopCategories(ctx, topCategories)
	if err != nil {
		return nil, response.NewInternal("failed to load top categories", err)
	}
	reporters, err := s.repo.TopReporters(ctx, topReporters)
	if err != nil {
		return nil, response.NewInternal("failed to load top reporters", err)
	}

	byStatus, total := withZeros(counts, article.Statuses)
	byRole, _ := withZeros(roleCounts, roles)

	topCats := make([]TopCategory, 0, len(cats))
	for _, c := range cats {
		topCats = append(topCats, TopCategory{
			ID: c.ID, Slug: c.Slug, Name: locale.Pick(c.Name, lang), Views: c.Views, Articles: c.Articles,
		})
	}
	topReps := make([]TopReporter, 0, len(reporters))
	for _, r := range reporters {
		topReps = append(topReps, TopReporter(r))
	}

	return &AdminResponse{
		Days:             days,
		ArticlesByStatus: byStatus,
		TotalArticles:    total,
		UsersByRole:      byRole,
		PendingComments:  pending,
		MediaCount:       mediaCount,
		TotalViews:       views,
		Series:           FillSeries(daily, since, days, lang),
		TopCategories:    topCats,
		TopReporters:     topReps,
	}, nil
}
