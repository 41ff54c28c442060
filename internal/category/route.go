package category

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes 设置栏目路由
func SetupCategoryRoutes(r *gin.RouterGroup, deps *app.Deps) {
	handler := NewCategoryHandler(NewCategoryService(NewRepository(deps.DB), article.NewServiceFromDeps(deps)))

	categories := r.Group("/categories")
	{
		categories.GET("", handler.Tree)
		categories.GET("/:slug", handler.Detail)
	}

	admin := r.Group("/admin/categories")
	admin.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	{
		admin.GET("", handler.AdminList)
		admin.POST("", handler.Create)
		admin.PUT("/:id", handler.Update)
		admin.DELETE("/:id", handler.Delete)
	}
}
