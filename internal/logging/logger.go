package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Logger 全局结构化日志
var Logger = slog.Default()

// InitLogger 初始化全局日志
// level: debug, info, warn, error（默认 info）
// format: json 或 text（默认 text）
func InitLogger(level, format string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func WithUser(userID uint) *slog.Logger {
	return Logger.With("user_id", userID)
}

func WithArticle(articleID uint) *slog.Logger {
	return Logger.With("article_id", articleID)
}

func WithError(err error) *slog.Logger {
	return Logger.With("error", err)
}
