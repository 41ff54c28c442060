package database

import (
	"context"
	"time"

	"newsbangla24/portal/config"
	"newsbangla24/portal/internal/model"
	"newsbangla24/portal/pkg/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// connectTimeout 启动时单次连接的超时
const connectTimeout = 10 * time.Second

var (
	PostgresDB *gorm.DB
	Redis      *redis.Client
)

// InitDatabase 连接 PostgreSQL 并迁移表结构；会话使用 redis 存储时同时连接 Redis
func InitDatabase() {
	initPostgres()
	if config.Conf.Session.Store == "redis" {
		initRedis()
	}
}

func initPostgres() {
	databaseConf := config.Conf.Database

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var err error
	PostgresDB, err = database.OpenPostgres(ctx,
		database.PostgresConfig{
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        databaseConf.LogLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)
	if err != nil {
		panic(err)
	}

	// 初始化数据库表
	if err := model.InitTable(PostgresDB); err != nil {
		panic(err)
	}
}

func initRedis() {
	redisConf := config.Conf.Redis

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var err error
	Redis, err = database.OpenRedis(ctx, database.RedisConfig{
		Host:     redisConf.Host,
		Port:     redisConf.Port,
		Password: redisConf.Password,
		DB:       redisConf.DB,
		PoolSize: redisConf.PoolSize,
	})
	if err != nil {
		panic(err)
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}

// Close 关闭数据库连接
func Close() {
	if PostgresDB != nil {
		if sqlDB, err := PostgresDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if Redis != nil {
		_ = Redis.Close()
	}
}
