package analytics

import (
	"context"
	"time"

	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/media"
	"newsbangla24/portal/internal/model/user"

	"gorm.io/gorm"
)

// DayViews 某天的浏览量
type DayViews struct {
	Day   time.Time
	Views int64
}

// ArticleRow 排行榜中的文章
type ArticleRow struct {
	ID        uint
	Slug      string
	Title     locale.Localized `gorm:"embedded;embeddedPrefix:title_"`
	Status    string
	ViewCount int64
}

// CategoryRow 栏目浏览量汇总
type CategoryRow struct {
	ID       uint
	Slug     string
	Name     locale.Localized `gorm:"embedded;embeddedPrefix:name_"`
	Views    int64
	Articles int64
}

// ReporterRow 记者发稿量
type ReporterRow struct {
	ID        uint
	Name      string
	Published int64
	Views     int64
}

// Repository 以下方法中 authorID 为 0 表示全站
type Repository interface {
	StatusCounts(ctx context.Context, authorID uint) (map[string]int64, error)
	TotalViews(ctx context.Context, authorID uint) (int64, error)
	CommentCount(ctx context.Context, authorID uint, status string) (int64, error)
	TopArticles(ctx context.Context, authorID uint, limit int) ([]ArticleRow, error)
	DailyViews(ctx context.Context, authorID uint, since time.Time) ([]DayViews, error)
	RoleCounts(ctx context.Context) (map[string]int64, error)
	MediaCount(ctx context.Context) (int64, error)
	TopCategories(ctx context.Context, limit int) ([]CategoryRow, error)
	TopReporters(ctx context.Context, limit int) ([]ReporterRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func byAuthor(db *gorm.DB, column string, authorID uint) *gorm.DB {
	if authorID == 0 {
		return db
	}
	return db.Where(column+" = ?", authorID)
}

type keyCount struct {
	Label string
	Count int64
}

func toMap(rows []keyCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Label] = r.Count
	}
	return out
}

func (r *repository) StatusCounts(ctx context.Context, authorID uint) (map[string]int64, error) {
	var rows []keyCount
	err := byAuthor(r.db.WithContext(ctx).Model(&article.Article{}), "author_id", authorID).
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (r *repository) TotalViews(ctx context.Context, authorID uint) (int64, error) {
	var total int64
	err := byAuthor(r.db.WithContext(ctx).Model(&article.Article{}), "author_id", authorID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) CommentCount(ctx context.Context, authorID uint, status string) (int64, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&comment.Comment{}).Where("comments.status = ?", status)
	if authorID != 0 {
		db = db.Joins("JOIN articles ON articles.id = comments.article_id").
			Where("articles.author_id = ?", authorID)
	}
	err := db.Count(&count).Error
	return count, err
}

func (r *repository) TopArticles(ctx context.Context, authorID uint, limit int) ([]ArticleRow, error) {
	var rows []ArticleRow
	err := byAuthor(r.db.WithContext(ctx).Model(&article.Article{}), "author_id", authorID).
		Select("id, slug, title_bn, title_en, status, view_count").
		Order("view_count DESC, id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DailyViews(ctx context.Context, authorID uint, since time.Time) ([]DayViews, error) {
	var rows []DayViews
	db := r.db.WithContext(ctx).Table("article_views").
		Select("article_views.day AS day, SUM(article_views.views) AS views").
		Where("article_views.day >= ?", since)
	if authorID != 0 {
		db = db.Joins("JOIN articles ON articles.id = article_views.article_id").
			Where("articles.author_id = ?", authorID)
	}
	err := db.Group("article_views.day").Order("article_views.day").Scan(&rows).Error
	return rows, err
}

func (r *repository) RoleCounts(ctx context.Context) (map[string]int64, error) {
	var rows []keyCount
	err := r.db.WithContext(ctx).Model(&user.User{}).
		Select("role AS label, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (r *repository) MediaCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&media.MediaItem{}).Count(&count).Error
	return count, err
}

func (r *repository) TopCategories(ctx context.Context, limit int) ([]CategoryRow, error) {
	var rows []CategoryRow
	err := r.db.WithContext(ctx).Table("categories").
		Select("categories.id, categories.slug, categories.name_bn, categories.name_en, "+
			"COALESCE(SUM(articles.view_count), 0) AS views, COUNT(articles.id) AS articles").
		Joins("JOIN articles ON articles.category_id = categories.id AND articles.status = ?", article.StatusPublished).
		Group("categories.id, categories.slug, categories.name_bn, categories.name_en").
		Order("views DESC, categories.id").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) TopReporters(ctx context.Context, limit int) ([]ReporterRow, error) {
	var rows []ReporterRow
	err := r.db.WithContext(ctx).Table("users").
		Select("users.id, users.name, COUNT(articles.id) AS published, "+
			"COALESCE(SUM(articles.view_count), 0) AS views").
		Joins("JOIN articles ON articles.author_id = users.id AND articles.status = ?", article.StatusPublished).
		Group("users.id, users.name").
		Order("published DESC, views DESC, users.id").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
