package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 会话 Redis key 前缀
	SessionKeyPrefix = "session:"
	// 用户会话集合 key 前缀（用于吊销用户的全部会话）
	UserSessionsKeyPrefix = "user_sessions:"
)

// RedisStore 基于 Redis 的会话存储，多实例部署时共享会话
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return SessionKeyPrefix + id
}

func userSessionsKey(userID uint) string {
	return UserSessionsKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

func (r *RedisStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("save session: non-positive ttl %s", ttl)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	userKey := userSessionsKey(s.UserID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(s.ID), data, ttl)
	pipe.SAdd(ctx, userKey, s.ID)
	pipe.Expire(ctx, userKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	// 先取出用户 ID，以便从用户的会话集合中移除
	s, err := r.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, userSessionsKey(s.UserID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *RedisStore) DeleteByUser(ctx context.Context, userID uint) (int, error) {
	userKey := userSessionsKey(userID)
	ids, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return 0, fmt.Errorf("list user sessions: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userKey)

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("delete user sessions: %w", err)
	}
	// 集合本身也计入了 Del 的返回值
	if deleted > 0 && len(ids) > 0 {
		deleted--
	}
	return int(deleted), nil
}
