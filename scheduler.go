package flowview

import "time"

// CancelFunc cancels a scheduled callback. It is safe to call more than once
// and after the callback has already run.
type CancelFunc func()

// Scheduler provides the time source and deferred execution used by animated
// primitives. Application implements it on top of its event loop; tests can
// substitute a manual implementation to drive animations deterministically.
type Scheduler interface {
	// Now returns the current time.
	Now() time.Time

	// ScheduleFrame schedules f to run after roughly one animation frame. The
	// callback receives the time at which it fires.
	ScheduleFrame(f func(now time.Time)) CancelFunc

	// ScheduleAfter schedules f to run after the given delay.
	ScheduleAfter(d time.Duration, f func()) CancelFunc
}

// timerScheduler is the fallback scheduler used by primitives that were not
// attached to an Application. Callbacks fire on timer goroutines.
type timerScheduler struct{}

func (timerScheduler) Now() time.Time {
	return time.Now()
}

func (timerScheduler) ScheduleFrame(f func(now time.Time)) CancelFunc {
	timer := time.AfterFunc(frameInterval, func() {
		f(time.Now())
	})
	return func() { timer.Stop() }
}

func (timerScheduler) ScheduleAfter(d time.Duration, f func()) CancelFunc {
	timer := time.AfterFunc(d, f)
	return func() { timer.Stop() }
}
