package article

import (
	"time"

	"newsbangla24/portal/internal/locale"
)

// ArticleRequest 记者创建或修改稿件
type ArticleRequest struct {
	Title      locale.Localized `json:"title"`
	Excerpt    locale.Localized `json:"excerpt"`
	Content    locale.Localized `json:"content"`
	CoverImage string           `json:"cover_image" binding:"omitempty,max=500"`
	CategoryID uint             `json:"category_id" binding:"required"`
	// nil 表示不修改标签
	TagIDs []uint `json:"tag_ids"`
}

// SubmitRequest 提交审核，可附带定时发布时间
type SubmitRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// ReviewRequest 审核操作
type ReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Note   string `json:"note" binding:"max=2000"`
}

// FlagsRequest 头条/突发标记
type FlagsRequest struct {
	IsFeatured *bool `json:"is_featured"`
	IsBreaking *bool `json:"is_breaking"`
}

// BulkRequest 批量操作
type BulkRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Action string `json:"action" binding:"required,oneof=publish archive delete"`
}

// BulkResult 单条批量操作结果
type BulkResult struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ListQuery 读者列表参数
type ListQuery struct {
	Category string
	Tag      string
	Q        string
	Sort     string
	Page     int
	PageSize int
}

// AdminListQuery 后台文章列表参数
type AdminListQuery struct {
	Status     string
	AuthorID   uint
	CategoryID uint
	Q          string
	Sort       string
	Page       int
	PageSize   int
}

// OwnListQuery 记者自己的稿件列表参数
type OwnListQuery struct {
	Status string
	Q      string
	Sort   string
}

// CategoryRef 列表中展示的栏目
type CategoryRef struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// AuthorRef 列表中展示的作者
type AuthorRef struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// TagRef 按语言投影后的标签
type TagRef struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Summary 按语言投影后的文章卡片
type Summary struct {
	ID             uint         `json:"id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Excerpt        string       `json:"excerpt"`
	CoverImage     string       `json:"cover_image,omitempty"`
	Category       *CategoryRef `json:"category,omitempty"`
	Author         *AuthorRef   `json:"author,omitempty"`
	IsFeatured     bool         `json:"is_featured"`
	IsBreaking     bool         `json:"is_breaking"`
	ViewCount      int64        `json:"view_count"`
	ViewLabel      string       `json:"view_label"`
	CommentCount   int64        `json:"comment_count"`
	ReadingMinutes int          `json:"reading_minutes"`
	ReadingTime    string       `json:"reading_time"`
	PublishedAt    *time.Time   `json:"published_at,omitempty"`
	PublishedLabel string       `json:"published_label,omitempty"`
}

// Detail 文章详情
type Detail struct {
	Summary
	Content  string    `json:"content"`
	Tags     []TagRef  `json:"tags"`
	Related  []Summary `json:"related"`
	Lang     string    `json:"lang"`
	Bookmark bool      `json:"bookmarked"`
}

// CategorySection 首页的栏目版块
type CategorySection struct {
	Category CategoryRef `json:"category"`
	Articles []Summary   `json:"articles"`
}

// HomeResponse 首页
type HomeResponse struct {
	Lang     string            `json:"lang"`
	Featured []Summary         `json:"featured"`
	Breaking []Summary         `json:"breaking"`
	Latest   []Summary         `json:"latest"`
	Sections []CategorySection `json:"sections"`
}

// TrendingItem 热门文章
type TrendingItem struct {
	Summary
	WindowViews int64 `json:"window_views"`
}

// BookmarkResult 收藏切换结果
type BookmarkResult struct {
	ArticleID  uint `json:"article_id"`
	Bookmarked bool `json:"bookmarked"`
}
