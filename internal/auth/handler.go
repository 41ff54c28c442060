package auth

import (
	"net/http"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/authsdk"

	"github.com/gin-gonic/gin"
)

// CookieOptions 会话 cookie 的作用域
type CookieOptions struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	authService *AuthService
	cookies     CookieOptions
}

func NewAuthHandler(authService *AuthService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

func (h *AuthHandler) setCookies(c *gin.Context, sessionID, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authsdk.CookieUserSession, sessionID, maxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(authsdk.CookieAuthToken, token, maxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
}

// Login 邮箱密码登录
// @Summary 登录
// @Description 校验邮箱和密码，创建会话并写入 user_session 与 auth_token cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=LoginResponse}
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		dto.Error(c, err, "login failed")
		return
	}

	h.setCookies(c, result.SessionID, result.Token, h.authService.CookieMaxAge())
	dto.SuccessResponse(c, result)
}

// Logout 退出登录
// @Summary 退出登录
// @Description 销毁服务端会话并清除 cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.GetString(middleware.CtxSessionID)
	if err := h.authService.Logout(c.Request.Context(), sid); err != nil {
		dto.Error(c, err, "logout failed")
		return
	}

	// 立即过期
	h.setCookies(c, "", "", -1)
	dto.SuccessResponse(c, gin.H{"message": "logged out"})
}

// Me 当前用户
// @Summary 当前登录用户
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=MeResponse}
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.authService.Me(c.Request.Context(), c.GetString(middleware.CtxSessionID))
	if err != nil {
		dto.Error(c, err, "failed to load current user")
		return
	}
	dto.SuccessResponse(c, result)
}
