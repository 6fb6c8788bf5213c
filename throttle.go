package debounce

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Throttler limits how often a callback runs to once per window, while
// guaranteeing that a burst of calls ends with a trailing invocation. It
// pairs with Debouncer: a Debouncer waits for a quiet period, a Throttler
// invokes at a steady ceiling from the first call on.
type Throttler struct {
	lim     *rate.Limiter
	pending atomic.Bool
}

// NewThrottler creates a Throttler that allows one invocation per window.
func NewThrottler(window time.Duration) *Throttler {
	return &Throttler{
		lim: rate.NewLimiter(rate.Every(window), 1),
	}
}

// Execute runs callback immediately if the rate limiter allows it. Otherwise
// it blocks until the next window opens and then runs callback, unless
// another trailing invocation is already waiting, in which case it returns
// nil without running callback. This ensures the final call of a burst is
// eventually executed.
//
// The wait is aborted if ctx is done, returning the context's error.
func (t *Throttler) Execute(ctx context.Context, callback func() error) error {
	if t.lim.Allow() {
		return callback()
	}

	if !t.pending.CompareAndSwap(false, true) {
		return nil
	}
	defer t.pending.Store(false)

	if err := t.lim.Wait(ctx); err != nil {
		return err
	}

	return callback()
}
