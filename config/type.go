package config

import (
	"time"

	"newsbangla24/portal/pkg/email"
)

// AppConfig 应用配置结构
type AppConfig struct {
	Server      ServerConfig    `koanf:"server"`
	GRPC        GRPCConfig      `koanf:"grpc"`
	Database    DatabaseConfig  `koanf:"database"`
	Redis       RedisConfig     `koanf:"redis"`
	Log         LogConfig       `koanf:"log"`
	JWT         JWTConfig       `koanf:"jwt"`
	Session     SessionConfig   `koanf:"session"`
	Media       MediaConfig     `koanf:"media"`
	Smtp        email.Config    `koanf:"smtp"`
	RabbitMQ    RabbitMQConfig  `koanf:"rabbitmq"`
	RateLimit   RateLimitConfig `koanf:"rate_limit"`
	Scheduler   SchedulerConfig `koanf:"scheduler"`
	Seed        SeedConfig      `koanf:"seed"`
	FrontendURL string          `koanf:"frontend_url"`
	SiteURL     string          `koanf:"site_url"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"`          // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`  // 秒
	WriteTimeout time.Duration `koanf:"write_timeout"` // 秒
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return s.Host + ":" + itoa(s.Port)
}

type GRPCConfig struct {
	Port int `koanf:"port"` // 0 表示不启动
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
}

type SessionConfig struct {
	Store        string        `koanf:"store"`         // memory, redis
	TTL          time.Duration `koanf:"ttl"`           // 会话有效期，如 24h
	CookieDomain string        `koanf:"cookie_domain"` // 为空表示当前域
	SecureCookie bool          `koanf:"secure_cookie"`
}

type MediaConfig struct {
	Dir       string `koanf:"dir"`
	URLPrefix string `koanf:"url_prefix"`
	MaxSizeMB int64  `koanf:"max_size_mb"`
}

type RabbitMQConfig struct {
	URL        string `koanf:"url"` // 为空表示不发布事件
	Exchange   string `koanf:"exchange"`
	RoutingKey string `koanf:"routing_key"`
	QueueName  string `koanf:"queue_name"`
}

type RateLimitConfig struct {
	LoginPerMinute int `koanf:"login_per_minute"`
	LoginBurst     int `koanf:"login_burst"`
}

type SchedulerConfig struct {
	Interval time.Duration `koanf:"interval"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}
