package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/comment"
)

var (
	// ErrNotFound 评论不存在
	ErrNotFound = errors.New("comment not found")
	// ErrArticleNotFound 评论所属文章不存在
	ErrArticleNotFound = errors.New("article not found")
)

// AdminQuery 后台评论列表条件
type AdminQuery struct {
	Status string
	Q      string
	Offset int
	Limit  int
}

// Repository 评论仓储
type Repository interface {
	FindByID(ctx context.Context, id uint) (*comment.Comment, error)
	ListApproved(ctx context.Context, articleID uint) ([]comment.Comment, error)
	List(ctx context.Context, q AdminQuery) ([]comment.Comment, int64, error)
	Create(ctx context.Context, c *comment.Comment) error
	// SetStatus 修改状态并同步文章的 comment_count
	SetStatus(ctx context.Context, c *comment.Comment, status string) error
	// Delete 删除评论及其回复并同步文章的 comment_count
	Delete(ctx context.Context, c *comment.Comment) error
	FindArticleBySlug(ctx context.Context, slug string) (*article.Article, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListApproved(ctx context.Context, articleID uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ? AND status = ?", articleID, comment.StatusApproved).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *repository) List(ctx context.Context, q AdminQuery) ([]comment.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&comment.Comment{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Q != "" {
		like := listing.ContainsPattern(q.Q)
		query = query.Where(`content ILIKE ? ESCAPE '\' OR author_name ILIKE ? ESCAPE '\' OR author_email ILIKE ? ESCAPE '\'`,
			like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []comment.Comment
	err := query.Order("created_at DESC, id DESC").Offset(q.Offset).Limit(q.Limit).Find(&comments).Error
	return comments, total, err
}

func (r *repository) Create(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if c.Status != comment.StatusApproved {
			return nil
		}
		return syncCount(tx, c.ArticleID)
	})
}

func (r *repository) SetStatus(ctx context.Context, c *comment.Comment, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(c).Update("status", status).Error; err != nil {
			return err
		}
		return syncCount(tx, c.ArticleID)
	})
}

func (r *repository) Delete(ctx context.Context, c *comment.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", c.ID).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&comment.Comment{}, c.ID).Error; err != nil {
			return err
		}
		return syncCount(tx, c.ArticleID)
	})
}

// syncCount 以已通过的评论数重算 comment_count
func syncCount(tx *gorm.DB, articleID uint) error {
	approved := tx.Model(&comment.Comment{}).
		Select("COUNT(*)").
		Where("article_id = ? AND status = ?", articleID, comment.StatusApproved)
	return tx.Model(&article.Article{}).
		Where("id = ?", articleID).
		Update("comment_count", approved).Error
}

func (r *repository) FindArticleBySlug(ctx context.Context, slug string) (*article.Article, error) {
	var a article.Article
	err := r.db.WithContext(ctx).
		Select("id", "slug", "title_bn", "title_en", "author_id", "status").
		Where("slug = ?", slug).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
