package media

import (
	"context"
	"errors"

	"newsbangla24/portal/internal/model/media"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("media not found")

type Repository interface {
	FindByID(ctx context.Context, id uint) (*media.MediaItem, error)
	// FindByHash uploaderID 为 0 表示任意上传者
	FindByHash(ctx context.Context, hash string, uploaderID uint) (*media.MediaItem, error)
	// CountByHash 引用同一磁盘文件的记录数
	CountByHash(ctx context.Context, hash string) (int64, error)
	// List uploaderID 为 0 表示全部用户，category 为空表示全部类别
	List(ctx context.Context, uploaderID uint, category string) ([]media.MediaItem, error)
	Create(ctx context.Context, item *media.MediaItem) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint) (*media.MediaItem, error) {
	var item media.MediaItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) FindByHash(ctx context.Context, hash string, uploaderID uint) (*media.MediaItem, error) {
	var item media.MediaItem
	db := r.db.WithContext(ctx).Where("file_hash = ?", hash)
	if uploaderID != 0 {
		db = db.Where("uploaded_by = ?", uploaderID)
	}
	err := db.Order("id").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) List(ctx context.Context, uploaderID uint, category string) ([]media.MediaItem, error) {
	var items []media.MediaItem
	db := r.db.WithContext(ctx).Model(&media.MediaItem{})
	if uploaderID != 0 {
		db = db.Where("uploaded_by = ?", uploaderID)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountByHash(ctx context.Context, hash string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&media.MediaItem{}).Where("file_hash = ?", hash).Count(&n).Error
	return n, err
}

func (r *repository) Create(ctx context.Context, item *media.MediaItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&media.MediaItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
