package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reporter = Identity{UserID: 2, Email: "reporter@newsbangla24.com", Name: "Reporter", Role: "reporter"}

func newTestManager(t *testing.T) (*Manager, *MemoryStore, *clockwork.FakeClock) {
	t.Helper()
	store := NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	return NewManager(store, WithClock(clock), WithTTL(time.Hour)), store, clock
}

func TestManagerCreate(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	s, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	assert.Len(t, s.ID, 43) // 32 字节 base64url 无填充
	assert.Equal(t, reporter.UserID, s.UserID)
	assert.Equal(t, "reporter", s.Role)
	assert.Equal(t, clock.Now(), s.CreatedAt)
	assert.Equal(t, clock.Now().Add(time.Hour), s.ExpiresAt)

	other, err := m.Create(ctx, reporter)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestManagerGetExpiry(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		found   bool
	}{
		{"fresh session", 0, true},
		{"just before expiry", time.Hour - time.Second, true},
		{"exactly at expiry", time.Hour, true},
		{"past expiry", time.Hour + time.Second, false},
		{"long past expiry", 48 * time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store, clock := newTestManager(t)
			ctx := context.Background()

			s, err := m.Create(ctx, reporter)
			require.NoError(t, err)

			clock.Advance(tt.advance)
			got, err := m.Get(ctx, s.ID)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, s.ID, got.ID)
				assert.Equal(t, 1, store.Len())
				return
			}
			assert.ErrorIs(t, err, ErrSessionNotFound)
			assert.Nil(t, got)
			assert.Equal(t, 0, store.Len(), "expired session should be removed")
		})
	}
}

func TestManagerGetUnknown(t *testing.T) {
	m, _, _ := newTestManager(t)
	_, err := m.Get(context.Background(), "missing")
	assert.True(t, IsNotFound(err))

	_, err = m.Get(context.Background(), "")
	assert.True(t, IsNotFound(err))
}

func TestManagerRefresh(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	s, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	refreshed, err := m.Refresh(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), refreshed.ExpiresAt)

	// 原本的过期时间已过，但续期后仍然有效
	clock.Advance(30 * time.Minute)
	_, err = m.Get(ctx, s.ID)
	assert.NoError(t, err)

	clock.Advance(31 * time.Minute)
	_, err = m.Refresh(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerDestroy(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	s, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, s.ID))
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, m.Destroy(ctx, s.ID), "destroying twice is a no-op")
	assert.NoError(t, m.Destroy(ctx, ""))
}

func TestManagerDestroyUser(t *testing.T) {
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := m.Create(ctx, reporter)
		require.NoError(t, err)
	}
	admin, err := m.Create(ctx, Identity{UserID: 1, Email: "admin@newsbangla24.com", Role: "admin"})
	require.NoError(t, err)

	n, err := m.DestroyUser(ctx, reporter.UserID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, store.Len())

	_, err = m.Get(ctx, admin.ID)
	assert.NoError(t, err)
}

func TestMemoryStoreSweepsExpiredOnSave(t *testing.T) {
	m, store, clock := newTestManager(t)
	ctx := context.Background()

	stale, err := m.Create(ctx, reporter)
	require.NoError(t, err)
	admin, err := m.Create(ctx, Identity{UserID: 1, Email: "admin@newsbangla24.com", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	// 两个会话都从未再被读取，过期后由下一次 Save 清理
	clock.Advance(2 * time.Hour)
	fresh, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
	_, err = store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	n, err := store.DeleteByUser(ctx, reporter.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "user index only holds the live session")
	_, err = store.Get(ctx, fresh.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreSweepIsThrottled(t *testing.T) {
	store := NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	m := NewManager(store, WithClock(clock), WithTTL(time.Minute))
	ctx := context.Background()

	_, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	// 已过期，但距上次清理不足 sweepInterval
	clock.Advance(2 * time.Minute)
	_, err = m.Create(ctx, reporter)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	clock.Advance(sweepInterval)
	_, err = m.Create(ctx, reporter)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
