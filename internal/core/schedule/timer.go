package schedule

import (
	"sync"
	"time"
)

// TimerScheduler schedules callbacks with time.AfterFunc and hands them to
// dispatch when they are due. Dispatch decides where callbacks run; passing
// fyne.Do or Loop.Dispatch keeps every callback on a single goroutine.
type TimerScheduler struct {
	mu       sync.Mutex
	dispatch func(func())
	next     Handle
	pending  map[Handle]*time.Timer
}

// NewTimerScheduler creates a scheduler. A nil dispatch runs callbacks on the
// timer goroutine.
func NewTimerScheduler(dispatch func(func())) *TimerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TimerScheduler{
		dispatch: dispatch,
		pending:  make(map[Handle]*time.Timer),
	}
}

// Schedule registers callback to run after delay.
func (scheduler *TimerScheduler) Schedule(delay time.Duration, callback func()) Handle {
	if delay < 0 {
		delay = 0
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.next++
	handle := scheduler.next
	scheduler.pending[handle] = time.AfterFunc(delay, func() {
		scheduler.dispatch(func() {
			scheduler.fire(handle, callback)
		})
	})
	return handle
}

// Cancel prevents a pending callback from running. A callback whose timer
// already fired but has not been dispatched yet is suppressed as well.
func (scheduler *TimerScheduler) Cancel(handle Handle) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if timer, ok := scheduler.pending[handle]; ok {
		timer.Stop()
		delete(scheduler.pending, handle)
	}
}

// Pending returns the number of callbacks that have not run or been cancelled.
func (scheduler *TimerScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.pending)
}

// Close cancels every pending callback.
func (scheduler *TimerScheduler) Close() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	for handle, timer := range scheduler.pending {
		timer.Stop()
		delete(scheduler.pending, handle)
	}
}

func (scheduler *TimerScheduler) fire(handle Handle, callback func()) {
	scheduler.mu.Lock()
	_, ok := scheduler.pending[handle]
	delete(scheduler.pending, handle)
	scheduler.mu.Unlock()

	if ok {
		callback()
	}
}
