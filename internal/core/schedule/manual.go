package schedule

import "time"

type manualEntry struct {
	handle   Handle
	due      time.Time
	callback func()
}

// Manual is a virtual-time Scheduler and Clock. Time only moves when Advance
// or Set is called, and due callbacks run synchronously inside those calls.
type Manual struct {
	now     time.Time
	next    Handle
	entries []manualEntry
}

// NewManual creates a manual scheduler starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (manual *Manual) Now() time.Time {
	return manual.now
}

// Schedule registers callback to run once virtual time reaches now+delay.
func (manual *Manual) Schedule(delay time.Duration, callback func()) Handle {
	if delay < 0 {
		delay = 0
	}
	manual.next++
	manual.entries = append(manual.entries, manualEntry{
		handle:   manual.next,
		due:      manual.now.Add(delay),
		callback: callback,
	})
	return manual.next
}

// Cancel removes a pending callback.
func (manual *Manual) Cancel(handle Handle) {
	for i, entry := range manual.entries {
		if entry.handle == handle {
			manual.entries = append(manual.entries[:i], manual.entries[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to run.
func (manual *Manual) Pending() int {
	return len(manual.entries)
}

// Advance moves virtual time forward by d, running every callback that falls
// due on the way in due order. Callbacks scheduled while advancing run too if
// they fall due before the target time.
func (manual *Manual) Advance(d time.Duration) {
	manual.Set(manual.now.Add(d))
}

// Set moves virtual time to target. Moving backwards only changes Now.
func (manual *Manual) Set(target time.Time) {
	for {
		index := manual.nextDue(target)
		if index < 0 {
			break
		}
		entry := manual.entries[index]
		manual.entries = append(manual.entries[:index], manual.entries[index+1:]...)
		if entry.due.After(manual.now) {
			manual.now = entry.due
		}
		entry.callback()
	}
	manual.now = target
}

func (manual *Manual) nextDue(target time.Time) int {
	index := -1
	for i, entry := range manual.entries {
		if entry.due.After(target) {
			continue
		}
		if index < 0 || entry.due.Before(manual.entries[index].due) {
			index = i
		}
	}
	return index
}
