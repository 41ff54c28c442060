package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  read_timeout: 5
database:
  host: db.internal
  username: news
session:
  store: redis
  ttl: 2h
seed:
  enabled: true
`)
	t.Setenv("APP_DATABASE_USERNAME", "from-app-env")
	t.Setenv("DB_HOST", "db.override")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_SSLMODE", "true")

	conf, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.Server.Port)
	assert.Equal(t, 5*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, "db.override", conf.Database.Host)
	assert.Equal(t, "from-app-env", conf.Database.Username)
	assert.True(t, conf.Database.SSLMode)
	assert.Equal(t, "s3cret", conf.JWT.Secret)
	assert.Equal(t, "redis", conf.Session.Store)
	assert.Equal(t, 2*time.Hour, conf.Session.TTL)
	assert.True(t, conf.Seed.Enabled)
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	conf, err := Parse(writeConfig(t, "log:\n  level: debug\njwt:\n  secret: test-secret\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, "debug", conf.Server.Mode)
	assert.Equal(t, 15*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, "memory", conf.Session.Store)
	assert.Equal(t, 24*time.Hour, conf.Session.TTL)
	assert.Equal(t, "uploads", conf.Media.Dir)
	assert.Equal(t, "/uploads", conf.Media.URLPrefix)
	assert.Equal(t, int64(10), conf.Media.MaxSizeMB)
	assert.Equal(t, time.Minute, conf.Scheduler.Interval)
	assert.Equal(t, 10, conf.RateLimit.LoginPerMinute)
	assert.Equal(t, "http://localhost:3000", conf.SiteURL)
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: 8080}.Addr())
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_JWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"missing secret", "server:\n  mode: debug\n", true},
		{"development secret in debug", "jwt:\n  secret: " + DevJWTSecret + "\n", false},
		{"development secret in release", "server:\n  mode: release\njwt:\n  secret: " + DevJWTSecret + "\n", true},
		{"real secret in release", "server:\n  mode: release\njwt:\n  secret: 7f3c9a\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Parse(writeConfig(t, tt.yaml))
			if tt.wantErr {
				assert.ErrorContains(t, err, "jwt.secret")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParse_ShippedConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	conf, err := Parse(filepath.Join("..", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DevJWTSecret, conf.JWT.Secret)
}
