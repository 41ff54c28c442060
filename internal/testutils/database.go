package testutils

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"newsbangla24/portal/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 使用环境变量连接测试数据库并迁移全部表
// 返回的是一个事务，测试结束时自动回滚；数据库不可用时跳过测试
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5433")
		user := getEnvOrDefault("POSTGRES_USER", "test")
		password := getEnvOrDefault("POSTGRES_PASSWORD", "test")
		dbname := getEnvOrDefault("POSTGRES_DB", "newsbangla24_test")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			host, port, user, password, dbname)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		t.Skip("test database unavailable")
	}

	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	tx := db.Begin()
	t.Cleanup(func() {
		tx.Rollback()
		sqlDB.Close()
	})

	return tx
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// QueryLog 记录 DryRun 模式下生成的 SQL 和绑定参数
type QueryLog struct {
	SQL  []string
	Vars [][]any
}

// Find 返回第一条包含 fragment 的语句序号，不存在时为 -1
func (l *QueryLog) Find(fragment string) int {
	for i, sql := range l.SQL {
		if strings.Contains(sql, fragment) {
			return i
		}
	}
	return -1
}

// SetupDryRunDB 返回不连接数据库的 postgres 方言实例，只生成 SQL 不执行
func SetupDryRunDB(t *testing.T) (*gorm.DB, *QueryLog) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=dryrun dbname=dryrun sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open dry-run database: %v", err)
	}

	rec := &QueryLog{}
	err = db.Callback().Query().After("gorm:query").Register("testutils:capture", func(tx *gorm.DB) {
		rec.SQL = append(rec.SQL, tx.Statement.SQL.String())
		rec.Vars = append(rec.Vars, append([]any(nil), tx.Statement.Vars...))
	})
	if err != nil {
		t.Fatalf("register capture callback: %v", err)
	}
	return db, rec
}
