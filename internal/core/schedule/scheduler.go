package schedule

import "time"

// Handle identifies a scheduled callback. The zero Handle never refers to a
// pending callback, so cancelling it is always a no-op.
type Handle uint64

// Scheduler runs callbacks after a delay.
// Implementations invoke each scheduled callback at most once and never
// invoke a callback whose handle was cancelled before it ran.
type Scheduler interface {
	Schedule(delay time.Duration, callback func()) Handle
	Cancel(handle Handle)
}

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
