package article

import "newsbangla24/portal/internal/locale"

// Tag 文章标签
type Tag struct {
	ID   uint             `gorm:"primaryKey" json:"id"`
	Name locale.Localized `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Slug string           `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey" json:"article_id"`
	TagID     uint `gorm:"primaryKey" json:"tag_id"`
}
