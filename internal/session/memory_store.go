package session

import (
	"context"
	"sync"
	"time"
)

// sweepInterval 两次清理过期会话的最小间隔
const sweepInterval = 10 * time.Minute

// MemoryStore 进程内会话存储，适用于单实例部署和测试
// 过期会话在 Save 时按 sweepInterval 批量清理
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]Session
	byUser    map[uint]map[string]struct{}
	lastSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		byUser:   make(map[uint]map[string]struct{}),
	}
}

func (m *MemoryStore) Save(_ context.Context, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 以保存时刻为基准，与 Manager 使用同一时钟
	now := s.ExpiresAt.Add(-ttl)
	if now.Sub(m.lastSweep) >= sweepInterval {
		for id, existing := range m.sessions {
			if existing.Expired(now) {
				m.removeLocked(id, existing.UserID)
			}
		}
		m.lastSweep = now
	}

	m.sessions[s.ID] = *s
	ids, ok := m.byUser[s.UserID]
	if !ok {
		ids = make(map[string]struct{})
		m.byUser[s.UserID] = ids
	}
	ids[s.ID] = struct{}{}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil
	}
	m.removeLocked(id, s.UserID)
	return nil
}

func (m *MemoryStore) removeLocked(id string, userID uint) {
	delete(m.sessions, id)
	if ids := m.byUser[userID]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(m.byUser, userID)
		}
	}
}

func (m *MemoryStore) DeleteByUser(_ context.Context, userID uint) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.byUser[userID]
	for id := range ids {
		delete(m.sessions, id)
	}
	delete(m.byUser, userID)
	return len(ids), nil
}

// Len 当前保存的会话数（含已过期但尚未清理的）
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
