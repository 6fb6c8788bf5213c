// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, but the underlying operation is
// expensive and only needs to be performed once per batch of calls.
//
// The Debouncer type is the core of the package: it carries an argument of
// any type from the most recent call to the next invocation, caches the
// invocation result, and supports leading/trailing edges and a maxWait
// ceiling that guarantees progress under continuous call pressure. New,
// NewMutable and their variants are thin convenience wrappers around it for
// callers that debounce plain func() values.
package debounce

import (
	"time"
)

// New returns a debounced function that delays invoking f until after wait
// time has elapsed since the last time the debounced function was invoked.
//
// The returned cancel function can be used to cancel any pending invocation
// of f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
//
// Unlike the Debouncer methods, f is invoked on the timer goroutine even on
// the leading edge, so callers never block on f.
func New(
	wait time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), cancel func()) {
	if f == nil {
		panic("debounce: nil function")
	}

	d := NewDebouncer(wait, func(f func()) struct{} {
		go f()

		return struct{}{}
	}, opts...)

	debounced = func() { d.Call(f) }
	cancel = d.Cancel

	return debounced, cancel
}

// NewWithMaxWait returns a debounced function like New, but with a maximum
// wait time of maxWait, which is the maximum time f is allowed to be delayed
// before it is invoked.
//
// The returned cancel function can be used to cancel any pending invocation
// of f, but is not required to be called, so can be ignored if not needed.
//
// Both debounced and cancel functions are safe for concurrent use in
// goroutines, and can both be called multiple times.
func NewWithMaxWait(
	wait, maxWait time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), cancel func()) {
	return New(wait, f, append(opts, MaxWait(maxWait))...)
}
