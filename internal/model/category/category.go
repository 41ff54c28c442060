// Package category 栏目模型
package category

import (
	"time"

	"newsbangla24/portal/internal/locale"
)

// Category 新闻栏目，可有一级子栏目
type Category struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        locale.Localized `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Slug        string           `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Description locale.Localized `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	ParentID    *uint            `gorm:"index" json:"parent_id,omitempty"`
	Color       string           `gorm:"type:varchar(20)" json:"color"`
	SortOrder   int              `gorm:"default:0" json:"sort_order"`
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// 非数据库字段
	ArticleCount int64       `gorm:"-" json:"article_count"`
	Children     []*Category `gorm:"-" json:"children,omitempty"`
}

// SearchFields 后台搜索时匹配的字段
func (c *Category) SearchFields() []string {
	return []string{c.Name.Bn, c.Name.En, c.Slug}
}
