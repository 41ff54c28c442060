package route

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"newsbangla24/portal/internal/analytics"
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/auth"
	"newsbangla24/portal/internal/category"
	"newsbangla24/portal/internal/comment"
	"newsbangla24/portal/internal/media"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/internal/notification"
	"newsbangla24/portal/internal/user"
	"newsbangla24/portal/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func initRoute(r *gin.Engine, deps *app.Deps) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传的媒体文件
	r.Static(deps.Config.Media.URLPrefix, deps.Config.Media.Dir)

	r.GET("/health", health(deps))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		auth.SetupAuthRoutes(apiV1, deps)
		user.SetupUserRoutes(apiV1, deps)
		article.SetupArticleRoutes(apiV1, deps)
		category.SetupCategoryRoutes(apiV1, deps)
		comment.SetupCommentRoutes(apiV1, deps)
		media.SetupMediaRoutes(apiV1, deps)
		analytics.SetupAnalyticsRoutes(apiV1, deps)

		notificationHandler := notification.NewNotificationHandler(deps.Notifier, deps.Hub, deps.Config.FrontendURL)
		notification.SetupNotificationRoutes(apiV1, notificationHandler, deps.Auth.SessionAuth())
	}
}

// health 数据库不可用时返回 503
func health(deps *app.Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.PingPostgres(ctx, deps.DB); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// SetupRouter debug 模式使用 gin 自带日志，release 模式使用 slog 访问日志
func SetupRouter(deps *app.Deps) *gin.Engine {
	if deps.Config.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger(), gin.Recovery())
	} else {
		r.Use(middleware.RequestLogger(slog.Default()), gin.Recovery())
	}
	r.Use(middleware.RequestID())

	reg := middleware.NewRegistry()
	r.Use(middleware.NewHTTPMetrics(reg).Middleware())
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler(reg)))

	// 设置跨域请求，前端需要携带会话 cookie
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", middleware.HeaderRequestID},
		ExposeHeaders:    []string{middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	initRoute(r, deps)

	return r
}
