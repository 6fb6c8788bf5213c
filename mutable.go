package debounce

import (
	"time"
)

// NewMutable returns a debounced function like New, but it allows the
// callback function f to be changed, as a new callback function is passed to
// each invocation of the debounced function.
//
// Only the very last f passed to the debounced function is called when the
// delay expires and the callback function is invoked. Previous f values are
// discarded. Passing a nil f does nothing.
//
// The returned cancel function can be used to cancel any pending invocation
// of f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewMutable(
	wait time.Duration,
	opts ...Option,
) (debounced func(f func()), cancel func()) {
	d := NewDebouncer(wait, func(f func()) struct{} {
		go f()

		return struct{}{}
	}, opts...)

	debounced = func(f func()) {
		if f != nil {
			d.Call(f)
		}
	}
	cancel = d.Cancel

	return debounced, cancel
}

// NewMutableWithMaxWait is a combination of NewMutable and NewWithMaxWait.
//
// When either the wait expires or the maxWait ceiling is reached, the last f
// passed to the debounced function is called.
//
// The returned cancel function can be used to cancel any pending invocation
// of f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewMutableWithMaxWait(
	wait, maxWait time.Duration,
	opts ...Option,
) (debounced func(f func()), cancel func()) {
	return NewMutable(wait, append(opts, MaxWait(maxWait))...)
}
