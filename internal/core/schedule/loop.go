package schedule

import (
	"context"
	"sync"
)

// Loop executes dispatched functions one at a time on the goroutine that
// calls Run. A loop runs once; after Run returns, Dispatch drops its input.
type Loop struct {
	jobs     chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop with the given queue size.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 1
	}
	return &Loop{
		jobs: make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// Dispatch queues fn. It blocks while the queue is full and the loop is
// still running.
func (loop *Loop) Dispatch(fn func()) {
	select {
	case <-loop.done:
		return
	default:
	}

	select {
	case loop.jobs <- fn:
	case <-loop.done:
	}
}

// Run executes queued functions until ctx is done.
func (loop *Loop) Run(ctx context.Context) error {
	defer loop.stopOnce.Do(func() { close(loop.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-loop.jobs:
			job()
		}
	}
}
