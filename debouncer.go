package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a bounded number of invocations of
// a target function. Each call records its argument, and only the argument of
// the most recent call survives to the next invocation. The result of the
// most recent invocation is cached and returned by calls that do not invoke.
//
// A Debouncer is created once per target function and mutated in place; all
// methods are safe for concurrent use.
type Debouncer[A, R any] struct {
	// Configuration
	wait time.Duration
	conf config

	// State
	mux        sync.Mutex
	fn         func(A) R
	arg        A
	hasArg     bool
	lastCall   time.Time
	lastInvoke time.Time
	timer      Timer
	timerGen   uint64
	lastResult R
	stopped    bool
}

// NewDebouncer creates a new Debouncer instance with the given wait duration,
// target function, and options.
//
// If neither Leading nor Trailing is set, trailing is enabled. A nil fn is a
// contract violation and panics. A negative wait is treated as zero; a zero
// wait still schedules through the timer, so calls made before the runtime
// runs the callback are coalesced rather than each invoking synchronously.
func NewDebouncer[A, R any](
	wait time.Duration,
	fn func(A) R,
	opts ...Option,
) *Debouncer[A, R] {
	if fn == nil {
		panic("debounce: nil function")
	}

	if wait < 0 {
		wait = 0
	}

	conf := config{clock: systemClock{}}
	for _, opt := range opts {
		opt(&conf)
	}

	// If neither leading nor trailing is set, default to trailing.
	if !conf.leading && !conf.trailing {
		conf.trailing = true
	}

	// A maxWait below wait cannot act as a ceiling, raise it to wait.
	if conf.maxWait > 0 && conf.maxWait < wait {
		conf.maxWait = wait
	}

	return &Debouncer[A, R]{wait: wait, conf: conf, fn: fn}
}

// Call records arg as the pending argument and either invokes the target
// function, schedules a future invocation, or leaves an already scheduled
// one in place. It returns the fresh result when it invokes, and the cached
// result of the most recent invocation otherwise.
//
// The target function runs synchronously on the calling goroutine when the
// leading edge or the maxWait ceiling triggers it, so it must not call back
// into the same Debouncer.
func (d *Debouncer[A, R]) Call(arg A) R {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.stopped {
		return d.lastResult
	}

	now := d.conf.clock.Now()
	invoking := d.shouldInvoke(now)

	d.arg = arg
	d.hasArg = true
	d.lastCall = now

	if invoking {
		if d.timer == nil {
			return d.leadingEdge(now)
		}

		if d.conf.maxWait > 0 {
			// Continuous calls have held the window open past the maxWait
			// ceiling. Restart the timer and invoke now so progress is made.
			d.timer.Stop()
			d.schedule(d.wait)

			return d.invoke(now)
		}
	}

	if d.timer == nil {
		d.schedule(d.wait)
	}

	return d.lastResult
}

// Cancel discards any pending invocation and resets the call and invocation
// times, so the next call opens a fresh window. The cached result of the most
// recent invocation is kept.
func (d *Debouncer[A, R]) Cancel() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.cancel()
}

// Flush invokes any pending trailing invocation immediately, as if its timer
// had just expired, and returns the result. If nothing is pending, it returns
// the cached result without invoking.
func (d *Debouncer[A, R]) Flush() R {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.timer == nil {
		return d.lastResult
	}

	d.timer.Stop()
	d.timer = nil

	return d.trailingEdge(d.conf.clock.Now())
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer[A, R]) Pending() bool {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.timer != nil
}

// Stop tears the Debouncer down: any pending invocation is discarded, and all
// future calls return the cached result without scheduling or invoking.
// Calling a stopped Debouncer is a deliberate no-op, not an error, so late
// calls from a torn-down consumer do not fail.
func (d *Debouncer[A, R]) Stop() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.stopped = true
	d.cancel()
}

// Rebind swaps the target function without resetting timing state. A pending
// invocation dispatches to the most recently bound function, not the one that
// was bound when the call was recorded.
//
// If fn is nil, the current function is kept.
func (d *Debouncer[A, R]) Rebind(fn func(A) R) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if fn != nil {
		d.fn = fn
	}
}

// shouldInvoke reports whether now is the time to invoke: on the first call,
// once the wait has elapsed since the last call, when the clock has jumped
// backward, or when the maxWait ceiling has been reached. It should only be
// called while the mutex is already locked.
func (d *Debouncer[A, R]) shouldInvoke(now time.Time) bool {
	if d.stopped {
		return false
	}

	if d.lastCall.IsZero() {
		return true
	}

	sinceCall := now.Sub(d.lastCall)
	if sinceCall >= d.wait || sinceCall < 0 {
		return true
	}

	return d.conf.maxWait > 0 && now.Sub(d.lastInvoke) >= d.conf.maxWait
}

// leadingEdge opens a fresh debounce window: it restarts the invocation
// clock, schedules the trailing-edge check, and invokes immediately if the
// leading edge is enabled. It should only be called while the mutex is
// already locked.
func (d *Debouncer[A, R]) leadingEdge(now time.Time) R {
	d.lastInvoke = now
	d.schedule(d.wait)

	if d.conf.leading {
		return d.invoke(now)
	}

	return d.lastResult
}

// trailingEdge closes the current window: it invokes with the held argument
// if the trailing edge is enabled and a call is pending, and drops the held
// argument otherwise. It should only be called while the mutex is already
// locked.
func (d *Debouncer[A, R]) trailingEdge(now time.Time) R {
	if d.conf.trailing && d.hasArg {
		return d.invoke(now)
	}

	d.clearArg()

	return d.lastResult
}

// schedule arms the timer after the given delay, replacing the current
// handle. The generation number lets an already-fired callback of a replaced
// timer detect that it is stale. It should only be called while the mutex is
// already locked.
func (d *Debouncer[A, R]) schedule(delay time.Duration) {
	d.timerGen++
	gen := d.timerGen
	d.timer = d.conf.clock.AfterFunc(delay, func() {
		d.timerExpired(gen)
	})
}

// timerExpired is called by the clock when the scheduled delay elapses. It
// either performs the trailing edge, or reschedules itself for the remaining
// wait when calls have arrived since the timer was set.
func (d *Debouncer[A, R]) timerExpired(gen uint64) {
	d.mux.Lock()
	defer d.mux.Unlock()

	// A timer that fired while it was being replaced or cancelled may only
	// reach the mutex now; it no longer owns the window.
	if gen != d.timerGen || d.timer == nil {
		return
	}
	d.timer = nil

	now := d.conf.clock.Now()
	if d.shouldInvoke(now) {
		d.trailingEdge(now)

		return
	}

	if d.stopped {
		return
	}

	d.schedule(d.remainingWait(now))
}

// remainingWait returns the delay until the earlier of the wait expiry and
// the maxWait ceiling, never negative. It should only be called while the
// mutex is already locked.
func (d *Debouncer[A, R]) remainingWait(now time.Time) time.Duration {
	remaining := d.wait - now.Sub(d.lastCall)

	if d.conf.maxWait > 0 {
		if m := d.conf.maxWait - now.Sub(d.lastInvoke); m < remaining {
			remaining = m
		}
	}

	if remaining < 0 {
		remaining = 0
	}

	return remaining
}

// invoke executes the target function with the held argument, consuming it,
// and caches the result. It should only be called while the mutex is already
// locked.
func (d *Debouncer[A, R]) invoke(now time.Time) R {
	d.lastInvoke = now

	arg := d.arg
	d.clearArg()

	d.lastResult = d.fn(arg)

	return d.lastResult
}

// cancel stops and clears any pending timer and resets call state. It should
// only be called while the mutex is already locked.
func (d *Debouncer[A, R]) cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.lastCall = time.Time{}
	d.lastInvoke = time.Time{}
	d.clearArg()
}

// clearArg drops the held argument, releasing whatever it references.
func (d *Debouncer[A, R]) clearArg() {
	var zero A
	d.arg = zero
	d.hasArg = false
}
