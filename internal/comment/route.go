package comment

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// SetupCommentRoutes 设置评论路由
func SetupCommentRoutes(r *gin.RouterGroup, deps *app.Deps) {
	handler := NewCommentHandler(NewCommentService(NewRepository(deps.DB), deps.Notifier, deps.Config.SiteURL))

	public := r.Group("/articles/:slug/comments")
	public.Use(deps.Auth.OptionalSessionAuth())
	{
		public.GET("", handler.Threads)
		public.POST("", handler.Create)
	}

	admin := r.Group("/admin/comments")
	admin.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	{
		admin.GET("", handler.AdminList)
		admin.POST("/bulk", handler.Bulk)
		admin.PATCH("/:id", handler.SetStatus)
		admin.DELETE("/:id", handler.Delete)
	}
}
