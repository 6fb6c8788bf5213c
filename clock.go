package debounce

import (
	"time"
)

// Clock supplies the time source and timer scheduler used by a debouncer.
// Production code uses the default system clock; tests can inject a fake
// clock for deterministic control over time-dependent behavior.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for the duration to elapse and then calls f in its
	// own goroutine. It returns a Timer that can be used to cancel the
	// call with Stop.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer represents a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the Timer from firing. It returns true if the call was
	// stopped, false if the timer has already expired or been stopped.
	Stop() bool
}

// systemClock implements Clock using the standard time package.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
