package debounce

import (
	"time"
)

type config struct {
	leading  bool
	trailing bool
	maxWait  time.Duration
	clock    Clock
}

// Option is a function that can be used to configure the debounced function.
type Option func(*config)

// Leading returns an option that will cause the debounced function to invoke
// the given function immediately, and then wait for the given duration before
// invoking the function again.
//
// When only leading is used, a burst of calls immediately invokes the function,
// any subsequent calls will be ignored until the wait duration has passed.
func Leading() Option {
	return func(c *config) {
		c.leading = true
	}
}

// Trailing returns an option that will cause the debounced function to be
// invoked after the wait duration has passed since the last call.
//
// When only trailing is used, a burst of calls will not invoke the function
// until the wait duration has passed.
//
// If both Leading and Trailing are used, a burst of calls immediately invokes
// the function, followed by another invocation after the wait duration has
// passed since the last call. If only a single call is made, only one
// invocation will occur.
func Trailing() Option {
	return func(c *config) {
		c.trailing = true
	}
}

// MaxWait returns an option that will cause the debounced function to be
// invoked every maxWait duration, even if the function is called repeatedly
// within the wait duration.
//
// Without a max wait, the debounced function might never be invoked if it is
// called repeatedly within the wait duration.
//
// For example, if the wait duration is 100ms and the max wait duration is
// 500ms, the debounced function will be invoked every 500ms, even if the
// function is called non-stop every 10ms.
//
// A maxWait below the wait duration is raised to the wait duration, as a
// smaller value cannot act as a ceiling.
func MaxWait(maxWait time.Duration) Option {
	return func(c *config) {
		c.maxWait = maxWait
	}
}

// WithClock returns an option that replaces the time source and timer
// scheduler used by the debounced function. The default is the system clock.
//
// Besides testing, this is also the hook for callers that need a strictly
// monotonic time source; the default behavior treats a backward clock jump
// as an expired wait window.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}
