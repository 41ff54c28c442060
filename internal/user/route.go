package user

import (
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/middleware"
	model "newsbangla24/portal/internal/model/user"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes 设置用户管理和个人资料路由
func SetupUserRoutes(r *gin.RouterGroup, deps *app.Deps) {
	handler := NewUserHandler(NewUserService(NewRepository(deps.DB), deps.Sessions, deps.Mailer))

	// 个人资料 - 需要认证
	me := r.Group("/me")
	me.Use(deps.Auth.SessionAuth())
	{
		me.PUT("/profile", handler.UpdateProfile)   // 修改资料
		me.PUT("/password", handler.ChangePassword) // 修改密码
	}

	// 用户管理 - 仅管理员
	admin := r.Group("/admin/users")
	admin.Use(deps.Auth.SessionAuth(), middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("", handler.ListUsers)
		admin.POST("", handler.CreateUser)
		admin.PUT("/:id", handler.UpdateUser)
		admin.PATCH("/:id/status", handler.UpdateStatus)
		admin.DELETE("/:id", handler.DeleteUser)
	}
}
