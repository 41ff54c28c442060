// Package comment 评论模型
package comment

import "time"

// 评论状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusSpam     = "spam"
)

// Comment 文章评论，ParentID 为空表示顶级评论
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ArticleID   uint      `gorm:"not null;index:idx_comment_article_status" json:"article_id"`
	ParentID    *uint     `gorm:"index" json:"parent_id,omitempty"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	AuthorName  string    `gorm:"type:varchar(100);not null" json:"author_name"`
	AuthorEmail string    `gorm:"type:varchar(255)" json:"author_email,omitempty"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_comment_article_status" json:"status"`
	IP          string    `gorm:"type:varchar(64)" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidStatus 是否为合法状态
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSpam:
		return true
	}
	return false
}
