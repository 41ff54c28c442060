package category

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
)

// ErrNotFound 栏目不存在
var ErrNotFound = errors.New("category not found")

// Repository 栏目仓储
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]category.Category, error)
	FindByID(ctx context.Context, id uint) (*category.Category, error)
	FindBySlug(ctx context.Context, slug string) (*category.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, c *category.Category) error
	Update(ctx context.Context, c *category.Category) error
	Delete(ctx context.Context, id uint) error
	// ArticleCounts 按栏目统计文章数，publishedOnly 为 true 时只统计已发布
	ArticleCounts(ctx context.Context, publishedOnly bool) (map[uint]int64, error)
	CountChildren(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	query := r.db.WithContext(ctx).Model(&category.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var cats []category.Category
	err := query.Order("sort_order ASC, id ASC").Find(&cats).Error
	return cats, err
}

func (r *repository) find(ctx context.Context, query string, args ...any) (*category.Category, error) {
	var c category.Category
	if err := r.db.WithContext(ctx).Where(query, args...).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	return r.find(ctx, "id = ?", id)
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return r.find(ctx, "slug = ?", slug)
}

func (r *repository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&category.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&n).Error
	return n > 0, err
}

func (r *repository) Create(ctx context.Context, c *category.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *category.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&category.Category{}, id).Error
}

func (r *repository) ArticleCounts(ctx context.Context, publishedOnly bool) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Total      int64
	}
	query := r.db.WithContext(ctx).Model(&article.Article{}).
		Select("category_id, COUNT(*) AS total").
		Group("category_id")
	if publishedOnly {
		query = query.Where("status = ?", article.StatusPublished)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}

func (r *repository) CountChildren(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&category.Category{}).Where("parent_id = ?", id).Count(&n).Error
	return n, err
}
