package auth

import (
	"time"

	model "newsbangla24/portal/internal/model/user"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reporter@newsbangla24.com"`
	Password string `json:"password" binding:"required" example:"reporter123"`
}

// LoginResponse 登录结果，token 同时写入 auth_token cookie
type LoginResponse struct {
	User      *model.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
	Token     string      `json:"token"`
	SessionID string      `json:"-"`
}

// MeResponse 当前会话用户
type MeResponse struct {
	User      *model.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}
