package comment

import "time"

// CreateRequest 读者发表评论；登录用户的姓名和邮箱取自会话
type CreateRequest struct {
	Content     string `json:"content" binding:"required,max=2000"`
	AuthorName  string `json:"author_name" binding:"omitempty,max=100"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email,max=255"`
	ParentID    *uint  `json:"parent_id"`
}

// StatusRequest 审核评论
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected spam"`
}

// BulkRequest 批量审核
type BulkRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Status string `json:"status" binding:"required,oneof=pending approved rejected spam"`
}

// BulkResult 单条批量操作结果
type BulkResult struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Commenter 发表评论的用户，UserID 为 0 表示游客
type Commenter struct {
	UserID uint
	Name   string
	Email  string
	Role   string
	IP     string
}

// PublicComment 前台展示的评论，不含邮箱和 IP
type PublicComment struct {
	ID           uint      `json:"id"`
	ParentID     *uint     `json:"parent_id,omitempty"`
	AuthorName   string    `json:"author_name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedLabel string    `json:"created_label"`
}

// Thread 顶级评论及其回复
type Thread struct {
	PublicComment
	Replies []PublicComment `json:"replies"`
}
