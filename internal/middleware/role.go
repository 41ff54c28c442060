package middleware

import (
	"slices"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole 要求当前用户具有给定角色之一，需放在 SessionAuth 之后
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if role == "" {
			dto.AbortWithError(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("authentication required"),
			))
			return
		}
		if !slices.Contains(roles, role) {
			dto.AbortWithError(c, response.NewForbidden("you do not have permission to access this resource"))
			return
		}
		c.Next()
	}
}
