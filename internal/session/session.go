// Package session 管理登录会话：生成会话 id、保存、过期判定和吊销
package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrSessionNotFound 会话不存在或已过期
	ErrSessionNotFound = errors.New("session not found")
)

// Session 登录会话
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired 判断在 now 时刻会话是否已过期
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity 创建会话所需的用户信息
type Identity struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

// Store 会话存储
type Store interface {
	// Save 保存会话，ttl 为存储层的保留时长
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	// Get 会话不存在时返回 ErrSessionNotFound
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser 删除用户的全部会话，返回删除数量
	DeleteByUser(ctx context.Context, userID uint) (int, error)
}
