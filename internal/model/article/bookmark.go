package article

import "time"

// Bookmark 读者收藏
type Bookmark struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
