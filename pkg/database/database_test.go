package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  PostgresConfig
		want string
	}{
		{
			name: "defaults",
			cfg:  PostgresConfig{Username: "news", Password: "secret", Database: "portal"},
			want: "host=localhost port=5432 user=news password=secret dbname=portal sslmode=disable TimeZone=Asia/Dhaka connect_timeout=5",
		},
		{
			name: "ssl and explicit zone",
			cfg:  PostgresConfig{Host: "db", Port: 6432, Username: "news", Database: "portal", SSLMode: true, TimeZone: "UTC", ConnectTimeout: 2 * time.Second},
			want: "host=db port=6432 user=news dbname=portal sslmode=require TimeZone=UTC connect_timeout=2",
		},
		{
			name: "password with space and quote",
			cfg:  PostgresConfig{Username: "news", Password: `it's a pass\`, Database: "portal"},
			want: `host=localhost port=5432 user=news password='it\'s a pass\\' dbname=portal sslmode=disable TimeZone=Asia/Dhaka connect_timeout=5`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestPostgresDefaultsKeepExplicitValues(t *testing.T) {
	cfg := PostgresConfig{LogLevel: "verbose", MaxOpenConns: 5}.withDefaults()
	assert.Equal(t, "warn", cfg.LogLevel, "unknown level falls back to warn")
	assert.Equal(t, 5, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
}

func TestPingPostgresNil(t *testing.T) {
	assert.Error(t, PingPostgres(context.Background(), nil))
}

func TestRedisAddr(t *testing.T) {
	assert.Equal(t, "localhost:6379", RedisConfig{}.Addr())
	assert.Equal(t, "cache:6380", RedisConfig{Host: "cache", Port: 6380}.Addr())
	assert.Equal(t, "[::1]:6379", RedisConfig{Host: "::1"}.Addr())
}

func TestOpenRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	host, port := srv.Host(), srv.Server().Addr().Port

	client, err := OpenRedis(context.Background(), RedisConfig{Host: host, Port: port, DB: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 10, client.Options().PoolSize)
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	srv.Select(2)
	got, err := srv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	srv.Close()
	_, err = OpenRedis(context.Background(), RedisConfig{Host: host, Port: port, DialTimeout: 200 * time.Millisecond})
	assert.ErrorContains(t, err, "ping redis")
}
