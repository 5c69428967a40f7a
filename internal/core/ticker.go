package core

import (
	"context"
	"sync"
	"time"
)

// MaxCatchUp bounds how many overdue steps a Ticker runs back to back before
// it gives up on the missed deadlines and resynchronizes with the clock.
const MaxCatchUp = 5

// Ticker calls a step function on its own goroutine at evenly spaced
// deadlines. The interval is re-read before every step so callers can speed
// up or slow down a running ticker. Deadlines are kept on the monotonic clock
// as next += interval, so slow steps or scheduler delays do not accumulate
// drift.
//
// The step function returns false to halt the ticker. Stop must not be called
// from inside step.
type Ticker struct {
	interval func() time.Duration
	step     func() bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewTicker creates a stopped ticker.
func NewTicker(interval func() time.Duration, step func() bool) *Ticker {
	return &Ticker{
		interval: interval,
		step:     step,
	}
}

// Start launches the ticker goroutine. Starting a running ticker is a no-op.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	go t.run(ctx, t.done)
}

// Stop halts the ticker and blocks until its goroutine has exited, so no
// step can fire after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Ticker) run(ctx context.Context, done chan struct{}) {
	defer func() {
		t.mu.Lock()
		t.running = false
		t.mu.Unlock()
		close(done)
	}()

	next := time.Now().Add(t.interval())
	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		for steps := 0; !time.Now().Before(next); steps++ {
			if steps == MaxCatchUp {
				next = time.Now().Add(t.interval())
				break
			}
			if ctx.Err() != nil {
				return
			}
			if !t.step() {
				return
			}
			next = next.Add(t.interval())
		}

		timer.Reset(time.Until(next))
	}
}
