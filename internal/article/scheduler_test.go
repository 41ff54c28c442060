package article

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPublisher struct {
	calls atomic.Int32
}

func (p *countingPublisher) PublishDue(context.Context) (int, error) {
	p.calls.Add(1)
	return 1, nil
}

func TestSchedulerTicksUntilCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pub := &countingPublisher{}
	sched := NewScheduler(pub, clock, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return pub.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	clock.Advance(time.Minute)
	assert.Eventually(t, func() bool { return pub.calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestNewSchedulerDefaults(t *testing.T) {
	sched := NewScheduler(&countingPublisher{}, nil, 0)
	assert.Equal(t, DefaultSchedulerInterval, sched.interval)
	assert.NotNil(t, sched.clock)
}
