// Package app 汇总各业务模块共享的依赖，由 cmd/server 组装后传给路由
package app

import (
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"newsbangla24/portal/config"
	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/internal/notification"
	"newsbangla24/portal/internal/session"
	"newsbangla24/portal/pkg/email"
)

// Deps 共享依赖
type Deps struct {
	Config   *config.AppConfig
	DB       *gorm.DB
	Clock    clockwork.Clock
	Sessions *session.Manager
	Auth     *middleware.Authenticator
	Hub      *notification.Hub
	Notifier *notification.Service
	Mailer   email.Sender
	Events   event.Publisher

	sessionStore session.Store
}

// Option 覆盖默认依赖（测试中使用）
type Option func(*Deps)

func WithClock(clock clockwork.Clock) Option {
	return func(d *Deps) {
		d.Clock = clock
	}
}

func WithSessionStore(store session.Store) Option {
	return func(d *Deps) {
		d.sessionStore = store
	}
}

func WithMailer(m email.Sender) Option {
	return func(d *Deps) {
		d.Mailer = m
	}
}

func WithEvents(p event.Publisher) Option {
	return func(d *Deps) {
		d.Events = p
	}
}

// New 以内存会话、空邮件和空事件发布者为默认值组装依赖
func New(cfg *config.AppConfig, db *gorm.DB, opts ...Option) *Deps {
	d := &Deps{
		Config: cfg,
		DB:     db,
		Clock:  clockwork.NewRealClock(),
		Mailer: email.NoopSender{},
		Events: event.NoopPublisher{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sessionStore == nil {
		d.sessionStore = session.NewMemoryStore()
	}
	d.Sessions = session.NewManager(d.sessionStore, session.WithClock(d.Clock), session.WithTTL(cfg.Session.TTL))
	d.Auth = middleware.NewAuthenticator(d.Sessions, cfg.JWT.Secret)
	d.Hub = notification.NewHub()
	d.Notifier = notification.NewService(notification.NewRepository(db), d.Hub)
	return d
}
