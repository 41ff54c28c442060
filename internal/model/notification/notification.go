// Package notification 站内通知模型
package notification

import "time"

// 通知类型
const (
	TypeArticleApproved  = "article_approved"
	TypeArticleRejected  = "article_rejected"
	TypeArticlePublished = "article_published"
	TypeNewComment       = "new_comment"
	TypeSystem           = "system"
)

// Notification 发给某个用户的通知
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_notification_user_read" json:"user_id"`
	Type      string    `gorm:"type:varchar(40);not null" json:"type"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Link      string    `gorm:"type:varchar(500)" json:"link,omitempty"`
	IsRead    bool      `gorm:"default:false;index:idx_notification_user_read" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
