// Package database 打开 PostgreSQL 与 Redis 连接，供各服务的 internal/database 复用
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig 连接参数，零值字段使用默认值
type PostgresConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         bool
	TimeZone        string // 默认 Asia/Dhaka
	ConnectTimeout  time.Duration
	LogLevel        string // silent | error | warn | info
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

var gormLogLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
}

func (c PostgresConfig) withDefaults() PostgresConfig {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.TimeZone == "" {
		c.TimeZone = "Asia/Dhaka"
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if _, ok := gormLogLevels[c.LogLevel]; !ok {
		c.LogLevel = "warn"
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 50
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = time.Hour
	}
	return c
}

// DSN libpq key=value 形式，含空格或引号的值会被加引号转义
func (c PostgresConfig) DSN() string {
	c = c.withDefaults()
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	pairs := [][2]string{
		{"host", c.Host},
		{"port", fmt.Sprint(c.Port)},
		{"user", c.Username},
		{"password", c.Password},
		{"dbname", c.Database},
		{"sslmode", sslmode},
		{"TimeZone", c.TimeZone},
		{"connect_timeout", fmt.Sprint(int(c.ConnectTimeout.Seconds()))},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		parts = append(parts, p[0]+"="+quoteDSNValue(p[1]))
	}
	return strings.Join(parts, " ")
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + dsnEscaper.Replace(v) + "'"
}

// OpenPostgres 建立连接池并在 ctx 内完成一次 ping
func OpenPostgres(ctx context.Context, cfg PostgresConfig) (*gorm.DB, error) {
	cfg = cfg.withDefaults()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:               logger.Default.LogMode(gormLogLevels[cfg.LogLevel]),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	slog.Info("postgres connected", "host", cfg.Host, "port", cfg.Port, "database", cfg.Database)
	return db, nil
}

// PingPostgres 健康检查使用
func PingPostgres(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("postgres not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
