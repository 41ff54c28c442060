package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	model "newsbangla24/portal/internal/model/user"
	"newsbangla24/portal/internal/session"
	"newsbangla24/portal/internal/user"
	"newsbangla24/portal/pkg/authsdk"
	"newsbangla24/portal/pkg/response"
)

// Users 认证所需的用户查询
type Users interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLogin(ctx context.Context, id uint, at time.Time) error
}

type AuthService struct {
	users    Users
	sessions *session.Manager
	secret   string
}

func NewAuthService(users Users, sessions *session.Manager, secret string) *AuthService {
	return &AuthService{users: users, sessions: sessions, secret: secret}
}

// CookieMaxAge cookie 有效期（秒），与会话 TTL 一致
func (s *AuthService) CookieMaxAge() int {
	return int(s.sessions.TTL().Seconds())
}

func unauthorized(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage(msg),
	)
}

// Login 邮箱或密码错误时返回同一条消息，不暴露邮箱是否存在
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, user.ErrNotFound) {
		return nil, unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load user", err)
	}
	if !user.CheckPassword(u.PasswordHash, req.Password) {
		return nil, unauthorized("invalid email or password")
	}
	if u.IsSuspended() {
		return nil, response.NewForbidden("account is suspended")
	}

	sess, err := s.sessions.Create(ctx, session.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	})
	if err != nil {
		return nil, response.NewInternal("failed to create session", err)
	}

	token, err := authsdk.GenerateToken(s.secret, authsdk.UserContext{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		SessionID: sess.ID,
	}, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		_ = s.sessions.Destroy(ctx, sess.ID)
		return nil, response.NewInternal("failed to sign token", err)
	}

	now := s.sessions.Now()
	if err := s.users.TouchLogin(ctx, u.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record login time", "user_id", u.ID, "error", err)
	}
	u.LastLoginAt = &now

	slog.InfoContext(ctx, "user logged in", "user_id", u.ID, "role", u.Role)
	return &LoginResponse{
		User:      u,
		ExpiresAt: sess.ExpiresAt,
		Token:     token,
		SessionID: sess.ID,
	}, nil
}

// Logout 会话不存在时视为已退出
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil && !session.IsNotFound(err) {
		return response.NewInternal("failed to destroy session", err)
	}
	return nil
}

// Me 返回会话对应的最新用户资料
func (s *AuthService) Me(ctx context.Context, sessionID string) (*MeResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if session.IsNotFound(err) {
			return nil, unauthorized("session expired, please log in again")
		}
		return nil, response.NewInternal("failed to load session", err)
	}

	u, err := s.users.FindByID(ctx, sess.UserID)
	if errors.Is(err, user.ErrNotFound) {
		_ = s.sessions.Destroy(ctx, sess.ID)
		return nil, unauthorized("account no longer exists")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load user", err)
	}
	return &MeResponse{User: u, ExpiresAt: sess.ExpiresAt}, nil
}
