package notification

import (
	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes 设置通知相关路由，auth 为必需认证中间件
func SetupNotificationRoutes(r *gin.RouterGroup, handler *NotificationHandler, auth gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("", handler.List)                     // 通知列表
		notifications.GET("/unread-count", handler.UnreadCount) // 未读数
		notifications.POST("/read-all", handler.MarkAllRead)    // 全部已读
		notifications.POST("/:id/read", handler.MarkRead)       // 标记已读
		notifications.GET("/ws", handler.Stream)                // websocket 推送
	}
}
