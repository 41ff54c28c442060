package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func testSession(id string, userID uint) *Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &Session{
		ID:        id,
		UserID:    userID,
		Email:     "editor@newsbangla24.com",
		Name:      "Editor",
		Role:      "editor",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestRedisStoreSaveGet(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	s := testSession("abc", 3)
	require.NoError(t, store.Save(ctx, s, time.Hour))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, s.UserID, got.UserID)
	assert.Equal(t, s.Email, got.Email)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	assert.Equal(t, time.Hour, mr.TTL(SessionKeyPrefix+"abc"))
	members, err := mr.Members(UserSessionsKeyPrefix + "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, members)
}

func TestRedisStoreExpiresWithTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("abc", 3), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreRejectsNonPositiveTTL(t *testing.T) {
	store, _ := newRedisStore(t)
	assert.Error(t, store.Save(context.Background(), testSession("abc", 3), 0))
}

func TestRedisStoreDelete(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("a", 3), time.Hour))
	require.NoError(t, store.Save(ctx, testSession("b", 3), time.Hour))
	require.NoError(t, store.Delete(ctx, "a"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	members, err := mr.Members(UserSessionsKeyPrefix + "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, members)

	assert.NoError(t, store.Delete(ctx, "unknown"))
}

func TestRedisStoreDeleteByUser(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("a", 3), time.Hour))
	require.NoError(t, store.Save(ctx, testSession("b", 3), time.Hour))
	require.NoError(t, store.Save(ctx, testSession("c", 4), time.Hour))

	n, err := store.DeleteByUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, mr.Exists(UserSessionsKeyPrefix+"3"))

	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)

	n, err = store.DeleteByUser(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestManagerWithRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	m := NewManager(store, WithTTL(time.Hour))
	ctx := context.Background()

	s, err := m.Create(ctx, reporter)
	require.NoError(t, err)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, reporter.Email, got.Email)

	require.NoError(t, m.Destroy(ctx, s.ID))
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
