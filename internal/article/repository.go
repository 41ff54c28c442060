package article

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/user"
)

var (
	// ErrNotFound 文章不存在
	ErrNotFound = errors.New("article not found")
	// ErrCategoryNotFound 栏目不存在或已停用
	ErrCategoryNotFound = errors.New("category not found")
)

// Query 文章列表条件，零值字段不参与过滤
type Query struct {
	Statuses    []string
	AuthorID    uint
	CategoryIDs []uint
	TagSlug     string
	Q           string
	Featured    bool
	Breaking    bool
	ExcludeID   uint
	Sort        string
	Offset      int
	Limit       int
}

// TrendingRow 窗口期内的阅读量
type TrendingRow struct {
	ArticleID uint
	Views     int64
}

// Repository 文章仓储
type Repository interface {
	FindByID(ctx context.Context, id uint) (*article.Article, error)
	FindBySlug(ctx context.Context, slug string) (*article.Article, error)
	List(ctx context.Context, q Query) ([]article.Article, int64, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]article.Article, error)
	ListByIDs(ctx context.Context, ids []uint) ([]article.Article, error)
	Create(ctx context.Context, a *article.Article, tagIDs []uint) error
	Update(ctx context.Context, a *article.Article, tagIDs []uint) error
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	DueScheduled(ctx context.Context, now time.Time) ([]article.Article, error)

	RecordView(ctx context.Context, id uint, day time.Time) error
	Trending(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error)

	ToggleBookmark(ctx context.Context, userID, articleID uint) (bool, error)
	BookmarkedIDs(ctx context.Context, userID uint) ([]uint, error)

	CategoryExists(ctx context.Context, id uint) (bool, error)
	CategoryIDsBySlug(ctx context.Context, slug string) ([]uint, error)
	TopCategories(ctx context.Context) ([]category.Category, error)
	CategoriesByID(ctx context.Context, ids []uint) (map[uint]category.Category, error)
	AuthorsByID(ctx context.Context, ids []uint) (map[uint]user.User, error)
	ListTags(ctx context.Context) ([]article.Tag, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===== Article 基础操作 =====

func (r *repository) FindByID(ctx context.Context, id uint) (*article.Article, error) {
	var a article.Article
	if err := r.db.WithContext(ctx).Preload("Tags").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*article.Article, error) {
	var a article.Article
	if err := r.db.WithContext(ctx).Preload("Tags").Where("slug = ?", slug).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// 读者列表的排序方式
var sortClauses = map[string]string{
	"latest":  "published_at DESC NULLS LAST, id DESC",
	"oldest":  "published_at ASC NULLS LAST, id ASC",
	"popular": "view_count DESC, id DESC",
	"title":   "title_en ASC, title_bn ASC, id ASC",
	"created": "created_at DESC, id DESC",
}

func (r *repository) List(ctx context.Context, q Query) ([]article.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&article.Article{})
	if len(q.Statuses) > 0 {
		query = query.Where("status IN ?", q.Statuses)
	}
	if q.AuthorID != 0 {
		query = query.Where("author_id = ?", q.AuthorID)
	}
	if len(q.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", q.CategoryIDs)
	}
	if q.TagSlug != "" {
		query = query.Where("id IN (?)", r.db.Table("article_tags").
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", q.TagSlug))
	}
	if q.Q != "" {
		like := listing.ContainsPattern(q.Q)
		query = query.Where(
			`title_bn ILIKE ? ESCAPE '\' OR title_en ILIKE ? ESCAPE '\' OR excerpt_bn ILIKE ? ESCAPE '\' OR `+
				`excerpt_en ILIKE ? ESCAPE '\' OR content_bn ILIKE ? ESCAPE '\' OR content_en ILIKE ? ESCAPE '\'`,
			like, like, like, like, like, like,
		)
	}
	if q.Featured {
		query = query.Where("is_featured = ?", true)
	}
	if q.Breaking {
		query = query.Where("is_breaking = ?", true)
	}
	if q.ExcludeID != 0 {
		query = query.Where("id <> ?", q.ExcludeID)
	}

	// 获取总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := sortClauses[q.Sort]
	if !ok {
		order = sortClauses["latest"]
	}
	query = query.Preload("Tags").Order(order).Offset(q.Offset)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var articles []article.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *repository) ListByAuthor(ctx context.Context, authorID uint) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("updated_at DESC, id DESC").
		Find(&articles).Error
	return articles, err
}

func (r *repository) ListByIDs(ctx context.Context, ids []uint) ([]article.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var articles []article.Article
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&articles).Error
	return articles, err
}

func (r *repository) Create(ctx context.Context, a *article.Article, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(a).Error; err != nil {
			return err
		}
		return replaceTags(tx, a, tagIDs)
	})
}

// Update tagIDs 为 nil 表示不修改标签
func (r *repository) Update(ctx context.Context, a *article.Article, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Save(a).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		return replaceTags(tx, a, tagIDs)
	})
}

func replaceTags(tx *gorm.DB, a *article.Article, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", a.ID).Delete(&article.ArticleTag{}).Error; err != nil {
		return err
	}
	a.Tags = nil
	if len(tagIDs) == 0 {
		return nil
	}
	if err := tx.Where("id IN ?", tagIDs).Find(&a.Tags).Error; err != nil {
		return err
	}
	links := make([]article.ArticleTag, 0, len(a.Tags))
	for _, t := range a.Tags {
		links = append(links, article.ArticleTag{ArticleID: a.ID, TagID: t.ID})
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

func (r *repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&article.Article{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 同时清理标签、收藏、阅读量和评论
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&article.ArticleTag{}, &article.Bookmark{}, &article.ArticleView{}, &comment.Comment{}} {
			if err := tx.Where("article_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&article.Article{}, id).Error
	})
}

func (r *repository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&article.Article{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *repository) DueScheduled(ctx context.Context, now time.Time) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", article.StatusScheduled, now).
		Order("scheduled_at ASC").
		Find(&articles).Error
	return articles, err
}

// ===== 阅读量 =====

// RecordView 累加总阅读量和当日阅读量
func (r *repository) RecordView(ctx context.Context, id uint, day time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&article.Article{}).
			Where("id = ?", id).
			Update("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			return err
		}
		view := article.ArticleView{ArticleID: id, Day: day, Views: 1}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "article_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]any{"views": gorm.Expr("article_views.views + 1")}),
		}).Create(&view).Error
	})
}

func (r *repository) Trending(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error) {
	var rows []TrendingRow
	err := r.db.WithContext(ctx).
		Table("article_views").
		Select("article_views.article_id, SUM(article_views.views) AS views").
		Joins("JOIN articles ON articles.id = article_views.article_id").
		Where("articles.status = ? AND article_views.day >= ?", article.StatusPublished, since).
		Group("article_views.article_id").
		Order("views DESC, article_views.article_id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ===== 收藏 =====

// ToggleBookmark 返回切换后是否处于已收藏状态
func (r *repository) ToggleBookmark(ctx context.Context, userID, articleID uint) (bool, error) {
	bookmarked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&article.Bookmark{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		bookmarked = true
		return tx.Create(&article.Bookmark{UserID: userID, ArticleID: articleID}).Error
	})
	return bookmarked, err
}

func (r *repository) BookmarkedIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&article.Bookmark{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("article_id", &ids).Error
	return ids, err
}

// ===== 关联数据 =====

func (r *repository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&category.Category{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// CategoryIDsBySlug 返回栏目及其子栏目的 ID，栏目不存在时返回 ErrCategoryNotFound
func (r *repository) CategoryIDsBySlug(ctx context.Context, slug string) ([]uint, error) {
	var cat category.Category
	err := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	ids := []uint{cat.ID}
	var children []uint
	if err := r.db.WithContext(ctx).Model(&category.Category{}).
		Where("parent_id = ? AND is_active = ?", cat.ID, true).
		Pluck("id", &children).Error; err != nil {
		return nil, err
	}
	return append(ids, children...), nil
}

func (r *repository) TopCategories(ctx context.Context) ([]category.Category, error) {
	var cats []category.Category
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL AND is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&cats).Error
	return cats, err
}

func (r *repository) CategoriesByID(ctx context.Context, ids []uint) (map[uint]category.Category, error) {
	out := make(map[uint]category.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var cats []category.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cats).Error; err != nil {
		return nil, err
	}
	for _, c := range cats {
		out[c.ID] = c
	}
	return out, nil
}

func (r *repository) AuthorsByID(ctx context.Context, ids []uint) (map[uint]user.User, error) {
	out := make(map[uint]user.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []user.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *repository) ListTags(ctx context.Context) ([]article.Tag, error) {
	var tags []article.Tag
	err := r.db.WithContext(ctx).Order("slug ASC").Find(&tags).Error
	return tags, err
}
