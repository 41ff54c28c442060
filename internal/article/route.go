package article

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// NewServiceFromDeps 路由和定时发布共用同一套依赖
func NewServiceFromDeps(deps *app.Deps) *ArticleService {
	return NewArticleService(NewRepository(deps.DB), Options{
		Notifier: deps.Notifier,
		Mailer:   deps.Mailer,
		Events:   deps.Events,
		Clock:    deps.Clock,
		SiteURL:  deps.Config.SiteURL,
	})
}

// SetupArticleRoutes 设置读者、记者工作台和后台审核路由
func SetupArticleRoutes(r *gin.RouterGroup, deps *app.Deps) {
	handler := NewArticleHandler(NewServiceFromDeps(deps))

	// 读者 - 可选认证
	public := r.Group("")
	public.Use(deps.Auth.OptionalSessionAuth())
	{
		public.GET("/home", handler.Home)
		public.GET("/articles", handler.List)
		public.GET("/articles/:slug", handler.Detail)
		public.GET("/trending", handler.Trending)
		public.GET("/search", handler.Search)
		public.GET("/tags", handler.Tags)
	}

	// 收藏 - 需要认证
	bookmarks := r.Group("/me/bookmarks")
	bookmarks.Use(deps.Auth.SessionAuth())
	{
		bookmarks.GET("", handler.Bookmarks)
		bookmarks.POST("/:id", handler.ToggleBookmark)
	}

	// 记者工作台
	reporter := r.Group("/reporter")
	reporter.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleReporter, model.RoleEditor, model.RoleAdmin))
	{
		reporter.GET("/articles", handler.OwnList)
		reporter.POST("/articles", handler.Create)
		reporter.GET("/articles/:id", handler.Get)
		reporter.PUT("/articles/:id", handler.Update)
		reporter.DELETE("/articles/:id", handler.Delete)
		reporter.POST("/articles/:id/submit", handler.Submit)
		reporter.GET("/calendar", handler.Calendar)
	}

	// 后台审核 - 管理员/编辑
	admin := r.Group("/admin/articles")
	admin.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleAdmin, model.RoleEditor))
	{
		admin.GET("", handler.AdminList)
		admin.POST("/bulk", handler.Bulk)
		admin.POST("/:id/review", handler.Review)
		admin.PATCH("/:id/flags", handler.SetFlags)
	}
}
