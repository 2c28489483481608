package debounce

import (
	"context"
	"sync"
	"time"
)

// Debouncer runs at most one scheduled call at a time: scheduling a new one
// cancels the previous, whether it is still waiting out the delay or
// already running. Used for keystroke-driven lookups (skill search, URL
// availability) where only the latest result may be applied.
type Debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn after the configured delay. The context handed to fn is
// cancelled when a later Do supersedes it; fn must honor that cancellation
// so a late result is discarded rather than applied.
func (d *Debouncer) Do(ctx context.Context, fn func(context.Context)) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	go func() {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-callCtx.Done():
			return
		case <-timer.C:
		}

		fn(callCtx)
	}()
}

// Stop cancels any scheduled or running call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()
}
