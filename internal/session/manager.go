package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultTTL 默认会话有效期
	DefaultTTL = 24 * time.Hour

	idBytes = 32
)

// Manager 会话管理器，封装过期判定和续期
type Manager struct {
	store Store
	clock clockwork.Clock
	ttl   time.Duration
}

type Option func(*Manager)

func WithClock(clock clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		clock: clockwork.NewRealClock(),
		ttl:   DefaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Now() time.Time {
	return m.clock.Now()
}

// Create 为用户创建新会话
func (m *Manager) Create(ctx context.Context, user Identity) (*Session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	now := m.clock.Now()
	s := &Session{
		ID:        id,
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Get 获取会话；不存在或已过期时返回 ErrSessionNotFound，过期会话同时被删除
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.clock.Now()) {
		if err := m.store.Delete(ctx, id); err != nil {
			slog.WarnContext(ctx, "failed to delete expired session", "user_id", s.UserID, "error", err)
		}
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Refresh 将会话有效期顺延一个 TTL
func (m *Manager) Refresh(ctx context.Context, id string) (*Session, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ExpiresAt = m.clock.Now().Add(m.ttl)
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return nil, err
	}
	return s, nil
}

// Destroy 删除会话（登出）
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// DestroyUser 吊销用户的全部会话
func (m *Manager) DestroyUser(ctx context.Context, userID uint) (int, error) {
	return m.store.DeleteByUser(ctx, userID)
}

// IsNotFound 判断是否为会话不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func newID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
