package analytics

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes 设置统计路由
func SetupAnalyticsRoutes(r *gin.RouterGroup, deps *app.Deps) {
	handler := NewAnalyticsHandler(NewAnalyticsService(NewRepository(deps.DB), deps.Clock))

	r.GET("/reporter/analytics", deps.Auth.SessionAuth(),
		middleware.RequireRole(model.RoleReporter, model.RoleEditor, model.RoleAdmin), handler.Reporter)
	r.GET("/admin/analytics", deps.Auth.SessionAuth(),
		middleware.RequireRole(model.RoleAdmin, model.RoleEditor), handler.Admin)
}
