package media

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// SetupMediaRoutes 设置媒体库路由
func SetupMediaRoutes(r *gin.RouterGroup, deps *app.Deps) {
	cfg := deps.Config.Media
	handler := NewMediaHandler(NewMediaService(NewRepository(deps.DB), NewDiskStorage(cfg.Dir), cfg.URLPrefix, cfg.MaxSizeMB))

	reporter := r.Group("/reporter/media")
	reporter.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleReporter, model.RoleEditor, model.RoleAdmin))
	{
		reporter.GET("", handler.OwnList)
		reporter.POST("", handler.Upload)
		reporter.DELETE("/:id", handler.Delete)
	}

	admin := r.Group("/admin/media")
	admin.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	{
		admin.GET("", handler.AdminList)
	}
}
