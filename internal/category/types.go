package category

import (
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/pkg/response"
)

// CategoryRequest 创建或修改栏目
type CategoryRequest struct {
	Name        locale.Localized `json:"name"`
	Slug        string           `json:"slug" binding:"omitempty,max=120"`
	Description locale.Localized `json:"description"`
	ParentID    *uint            `json:"parent_id"`
	Color       string           `json:"color" binding:"omitempty,max=20"`
	SortOrder   int              `json:"sort_order"`
	IsActive    *bool            `json:"is_active"`
}

// Node 按语言投影后的栏目树节点
type Node struct {
	ID           uint    `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Color        string  `json:"color,omitempty"`
	ArticleCount int64   `json:"article_count"`
	Children     []*Node `json:"children,omitempty"`
}

// DetailResponse 栏目页
type DetailResponse struct {
	Category *Node              `json:"category"`
	Articles *response.PageData `json:"articles"`
}
