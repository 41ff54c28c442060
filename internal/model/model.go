package model

import (
	"gorm.io/gorm"
	"newsbangla24/portal/internal/model/article"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/model/comment"
	"newsbangla24/portal/internal/model/media"
	"newsbangla24/portal/internal/model/notification"
	"newsbangla24/portal/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	return db.AutoMigrate(
		// 用户
		&user.User{},
		// 栏目
		&category.Category{},
		// 文章相关模型
		&article.Tag{},
		&article.Article{},
		&article.ArticleTag{},
		&article.ArticleView{},
		&article.Bookmark{},
		// 评论
		&comment.Comment{},
		// 媒体库
		&media.MediaItem{},
		// 通知
		&notification.Notification{},
	)
}
