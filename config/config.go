// config/config.go - 配置管理文件
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		Conf, err = Parse(configPath)
	})
	return err
}

// Parse 读取配置但不写入全局变量（测试和 Reload 复用）
func Parse(configPath string) (*AppConfig, error) {
	// 首先加载 .env 文件到环境变量，不存在时忽略
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: load .env: %v", err)
	}

	k = koanf.New(".")

	// 1. 加载配置文件
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config file %s: %w", configPath, err)
	}

	// 2. 加载标准环境变量（APP_ 前缀）
	// 例如：APP_DATABASE_HOST -> database.host
	if err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "APP_")), "_", ".", -1)
	}), nil); err != nil {
		log.Printf("warning: load APP_ env: %v", err)
	}

	// 3. 加载简化的环境变量名
	loadCustomEnvVars(k)

	conf := &AppConfig{}
	if err := k.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 转换时间单位
	conf.Server.ReadTimeout = conf.Server.ReadTimeout * time.Second
	conf.Server.WriteTimeout = conf.Server.WriteTimeout * time.Second

	setDefaults(conf)
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// loadCustomEnvVars 加载自定义环境变量名（简化命名）
func loadCustomEnvVars(k *koanf.Koanf) {
	mapping := map[string]string{
		"DB_HOST":        "database.host",
		"DB_PORT":        "database.port",
		"DB_USERNAME":    "database.username",
		"DB_PASSWORD":    "database.password",
		"DB_NAME":        "database.database",
		"REDIS_HOST":     "redis.host",
		"REDIS_PORT":     "redis.port",
		"REDIS_PASSWORD": "redis.password",
		"JWT_SECRET":     "jwt.secret",
		"SESSION_STORE":  "session.store",
		"LOG_LEVEL":      "log.level",
		"RABBITMQ_URL":   "rabbitmq.url",
		"SMTP_HOST":      "smtp.host",
		"SMTP_PASSWORD":  "smtp.password",
		"FRONTEND_URL":   "frontend_url",
	}
	for envName, key := range mapping {
		if v := os.Getenv(envName); v != "" {
			k.Set(key, v)
		}
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		k.Set("database.sslmode", v == "true")
	}
}

// setDefaults 配置文件缺省时的默认值
func setDefaults(conf *AppConfig) {
	if conf.Server.Port == 0 {
		conf.Server.Port = 8080
	}
	if conf.Server.Mode == "" {
		conf.Server.Mode = "debug"
	}
	if conf.Server.ReadTimeout == 0 {
		conf.Server.ReadTimeout = 15 * time.Second
	}
	if conf.Server.WriteTimeout == 0 {
		conf.Server.WriteTimeout = 30 * time.Second
	}
	if conf.Session.Store == "" {
		conf.Session.Store = "memory"
	}
	if conf.Session.TTL == 0 {
		conf.Session.TTL = 24 * time.Hour
	}
	if conf.Media.Dir == "" {
		conf.Media.Dir = "uploads"
	}
	if conf.Media.URLPrefix == "" {
		conf.Media.URLPrefix = "/uploads"
	}
	if conf.Media.MaxSizeMB == 0 {
		conf.Media.MaxSizeMB = 10
	}
	if conf.RabbitMQ.Exchange == "" {
		conf.RabbitMQ.Exchange = "newsbangla24"
	}
	if conf.RabbitMQ.RoutingKey == "" {
		conf.RabbitMQ.RoutingKey = "articles"
	}
	if conf.RabbitMQ.QueueName == "" {
		conf.RabbitMQ.QueueName = "article_events"
	}
	if conf.RateLimit.LoginPerMinute == 0 {
		conf.RateLimit.LoginPerMinute = 10
	}
	if conf.RateLimit.LoginBurst == 0 {
		conf.RateLimit.LoginBurst = 5
	}
	if conf.Scheduler.Interval == 0 {
		conf.Scheduler.Interval = time.Minute
	}
	if conf.FrontendURL == "" {
		conf.FrontendURL = "http://localhost:3000"
	}
	if conf.SiteURL == "" {
		conf.SiteURL = conf.FrontendURL
	}
}

// DevJWTSecret config.yaml 自带的开发密钥，release 模式下拒绝使用
const DevJWTSecret = "dev-only-insecure-jwt-secret"

// validateConfig 验证配置的有效性
func validateConfig(conf *AppConfig) error {
	if conf.Database.Password == "" {
		log.Println("warning: database.password is empty, please set DB_PASSWORD")
	}
	switch {
	case conf.JWT.Secret == "":
		return errors.New("jwt.secret is empty, please set JWT_SECRET")
	case conf.JWT.Secret == DevJWTSecret && conf.Server.Mode == "release":
		return errors.New("jwt.secret is the development default, please set JWT_SECRET for release mode")
	case conf.JWT.Secret == DevJWTSecret:
		log.Println("warning: using the development jwt.secret")
	}
	return nil
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("load config: %v", err)
	}
}

// GetString 获取字符串配置
func GetString(key string) string {
	if k == nil {
		log.Fatal("config not loaded")
	}
	return k.String(key)
}

// Reload 重新加载配置
func Reload(configPath string) error {
	conf, err := Parse(configPath)
	if err != nil {
		return err
	}
	Conf = conf
	return nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
