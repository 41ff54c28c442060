package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultSchedulerInterval 定时发布的检查间隔
const DefaultSchedulerInterval = time.Minute

// DuePublisher 发布到期稿件
type DuePublisher interface {
	PublishDue(ctx context.Context) (int, error)
}

// Scheduler 周期性发布到期的定时稿件
type Scheduler struct {
	publisher DuePublisher
	clock     clockwork.Clock
	interval  time.Duration
}

func NewScheduler(publisher DuePublisher, clock clockwork.Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultSchedulerInterval
	}
	return &Scheduler{publisher: publisher, clock: clock, interval: interval}
}

// Run 阻塞运行直到 ctx 取消
func (s *Scheduler) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("article scheduler started", "interval", s.interval)
	for {
		select {
		case <-ticker.Chan():
			s.tick(ctx)
		case <-ctx.Done():
			slog.Info("article scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.publisher.PublishDue(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "scheduled publishing failed", "error", err)
		return
	}
	if n > 0 {
		slog.InfoContext(ctx, "scheduled articles published", "count", n)
	}
}
