package auth

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/internal/user"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.RouterGroup, deps *app.Deps) {
	cfg := deps.Config
	handler := NewAuthHandler(
		NewAuthService(user.NewRepository(deps.DB), deps.Sessions, cfg.JWT.Secret),
		CookieOptions{Domain: cfg.Session.CookieDomain, Secure: cfg.Session.SecureCookie},
	)
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst, deps.Clock)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", limiter.Middleware(), handler.Login)
		// 会话已失效时退出也应成功
		authGroup.POST("/logout", deps.Auth.OptionalSessionAuth(), handler.Logout)
		authGroup.GET("/me", deps.Auth.SessionAuth(), handler.Me)
	}
}
