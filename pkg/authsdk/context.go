package authsdk

import (
	"context"
	"net/http"
	"strings"
)

// Cookie 名称，和前端 localStorage 的 key 保持一致
const (
	CookieAuthToken   = "auth_token"
	CookieUserSession = "user_session"
)

type ctxKey struct{}

// ExtractToken 从请求中提取令牌
// 支持两种方式：
// 1. Authorization: Bearer <token>
// 2. auth_token cookie
func ExtractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), nil
		}
		return "", ErrInvalidToken
	}

	if cookie, err := r.Cookie(CookieAuthToken); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoToken
}

// ExtractSessionID 读取 user_session cookie
func ExtractSessionID(r *http.Request) string {
	if cookie, err := r.Cookie(CookieUserSession); err == nil {
		return cookie.Value
	}
	return ""
}

// WithUser 把用户信息放入 context
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFrom 从 context 取用户信息，未登录返回空 UserContext（UserID=0）
func UserFrom(ctx context.Context) *UserContext {
	if user, ok := ctx.Value(ctxKey{}).(*UserContext); ok && user != nil {
		return user
	}
	return &UserContext{}
}
