// Package event 向消息队列发布文章事件，供搜索索引、推送等下游服务消费
package event

import (
	"context"
	"time"
)

// 事件类型
const (
	ArticlePublished = "article.published"
	ArticleArchived  = "article.archived"
	ArticleDeleted   = "article.deleted"
)

// ArticleEvent 文章事件
type ArticleEvent struct {
	Type        string    `json:"type"`
	ArticleID   uint      `json:"article_id"`
	Slug        string    `json:"slug"`
	TitleBn     string    `json:"title_bn"`
	TitleEn     string    `json:"title_en"`
	CategoryID  uint      `json:"category_id"`
	AuthorID    uint      `json:"author_id"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher 事件发布者
type Publisher interface {
	Publish(ctx context.Context, evt ArticleEvent) error
	Close() error
}

// NoopPublisher 未配置消息队列时使用
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ArticleEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
