// Package clock abstracts delayed callbacks so games and the session
// controller can be driven by a fake clock in tests.
package clock

import "time"

// Timer is a pending call scheduled by a Scheduler.
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func()) Timer

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Timer {
	return f(d, fn)
}

// Real schedules on the runtime timer wheel.
type Real struct{}

func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Stop stops t if it is non-nil.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
