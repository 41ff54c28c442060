// Package article 文章相关模型
package article

import (
	"time"

	"newsbangla24/portal/internal/locale"
)

// 文章状态
const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusRejected  = "rejected"
	StatusScheduled = "scheduled"
	StatusArchived  = "archived"
)

// Statuses 全部状态，按工作流顺序
var Statuses = []string{StatusDraft, StatusPending, StatusPublished, StatusRejected, StatusScheduled, StatusArchived}

// Article 新闻文章
type Article struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Slug           string           `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Title          locale.Localized `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Excerpt        locale.Localized `gorm:"embedded;embeddedPrefix:excerpt_" json:"excerpt"`
	Content        locale.Localized `gorm:"embedded;embeddedPrefix:content_" json:"content"`
	CoverImage     string           `gorm:"type:varchar(500)" json:"cover_image"`
	CategoryID     uint             `gorm:"not null;index" json:"category_id"`
	AuthorID       uint             `gorm:"not null;index" json:"author_id"`
	Status         string           `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	IsFeatured     bool             `gorm:"default:false;index" json:"is_featured"`
	IsBreaking     bool             `gorm:"default:false;index" json:"is_breaking"`
	ViewCount      int64            `gorm:"default:0" json:"view_count"`
	CommentCount   int64            `gorm:"default:0" json:"comment_count"`
	ReadingMinutes int              `gorm:"default:1" json:"reading_minutes"`
	// 审核人填写的备注（驳回理由）
	ReviewNote  string     `gorm:"type:text" json:"review_note,omitempty"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	// 定时发布时间，审核通过后到达该时间自动发布
	ScheduledAt *time.Time `gorm:"index" json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Tags []Tag `gorm:"many2many:article_tags;" json:"tags,omitempty"`
}

// IsEditable 记者可编辑的状态
func (a *Article) IsEditable() bool {
	return a.Status == StatusDraft || a.Status == StatusRejected
}

// IsPublished 读者可见
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

// CalendarDate 日历中使用的日期：发布时间 > 定时时间 > 创建时间
func (a *Article) CalendarDate() time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	if a.ScheduledAt != nil {
		return *a.ScheduledAt
	}
	return a.CreatedAt
}

// SearchFields 双语标题、摘要和正文
func (a *Article) SearchFields() []string {
	return []string{
		a.Title.Bn, a.Title.En,
		a.Excerpt.Bn, a.Excerpt.En,
		a.Content.Bn, a.Content.En,
	}
}

// ValidStatus 是否为合法状态
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ArticleView 文章每日阅读量
type ArticleView struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	Day       time.Time `gorm:"primaryKey;type:date" json:"day"`
	Views     int64     `gorm:"default:0" json:"views"`
}
