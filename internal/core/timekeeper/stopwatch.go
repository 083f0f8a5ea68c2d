package timekeeper

import (
	"time"

	"go.uber.org/zap"

	"timetabs/internal/core/model"
	"timetabs/internal/core/schedule"
	"timetabs/internal/logger"
)

// StopwatchSnapshot is a read-only view of a Stopwatch.
type StopwatchSnapshot struct {
	State   State
	Display string
	Elapsed time.Duration
	Laps    []string
}

// Stopwatch counts up from zero. It is not safe for concurrent use: every
// method and every scheduled tick must run on the scheduler's dispatch goroutine.
type Stopwatch struct {
	observers

	scheduler schedule.Scheduler
	clock     schedule.Clock
	config    model.StopwatchConfig
	log       *zap.SugaredLogger

	running  bool
	startRef time.Time
	elapsed  time.Duration
	display  string
	laps     []string
	pending  schedule.Handle
}

// NewStopwatch creates a stopped stopwatch showing 00:00.00.
func NewStopwatch(scheduler schedule.Scheduler, clock schedule.Clock, config model.StopwatchConfig) *Stopwatch {
	return &Stopwatch{
		scheduler: scheduler,
		clock:     clock,
		config:    config.WithDefaults(),
		log:       logger.Named("stopwatch"),
		display:   stopwatchZero,
	}
}

// SetLogger replaces the component logger.
func (stopwatch *Stopwatch) SetLogger(log *zap.SugaredLogger) {
	stopwatch.log = log
}

// UpdateConfig applies new settings from the next refresh on.
func (stopwatch *Stopwatch) UpdateConfig(config model.StopwatchConfig) {
	stopwatch.config = config.WithDefaults()
}

// Start resumes counting from the accumulated elapsed time.
func (stopwatch *Stopwatch) Start() {
	if stopwatch.running {
		return
	}
	now := stopwatch.clock.Now()
	stopwatch.running = true
	stopwatch.startRef = now.Add(-stopwatch.elapsed)
	stopwatch.log.Debugw("started", "elapsed", stopwatch.elapsed)

	stopwatch.emit(Event{Type: EventStateChange, State: StateRunning, Display: stopwatch.display, At: now})
	stopwatch.refresh(now)
	stopwatch.scheduleTick()
}

// Tick recomputes the elapsed time and requests the next refresh while running.
func (stopwatch *Stopwatch) Tick() {
	stopwatch.pending = 0
	if !stopwatch.running {
		return
	}
	stopwatch.refresh(stopwatch.clock.Now())
	stopwatch.scheduleTick()
}

// Stop freezes the elapsed time.
func (stopwatch *Stopwatch) Stop() {
	if !stopwatch.running {
		return
	}
	now := stopwatch.clock.Now()
	stopwatch.cancelTick()
	stopwatch.refresh(now)
	stopwatch.running = false
	stopwatch.log.Debugw("stopped", "elapsed", stopwatch.elapsed)

	stopwatch.emit(Event{Type: EventStateChange, State: StateIdle, Display: stopwatch.display, At: now})
}

// Lap records the current display. It does nothing while stopped.
func (stopwatch *Stopwatch) Lap() {
	if !stopwatch.running {
		return
	}
	now := stopwatch.clock.Now()
	stopwatch.refresh(now)
	stopwatch.laps = append(stopwatch.laps, stopwatch.display)
	label := FormatLap(len(stopwatch.laps), stopwatch.display)
	stopwatch.log.Debugw("lap", "lap", label)

	stopwatch.emit(Event{Type: EventLap, State: StateRunning, Display: stopwatch.display, Message: label, At: now})
}

// Reset stops the stopwatch and clears elapsed time and laps.
func (stopwatch *Stopwatch) Reset() {
	stopwatch.cancelTick()
	stopwatch.running = false
	stopwatch.elapsed = 0
	stopwatch.laps = nil
	stopwatch.display = stopwatchZero
	stopwatch.log.Debug("reset")

	stopwatch.emit(Event{Type: EventStateChange, State: StateIdle, Display: stopwatch.display, At: stopwatch.clock.Now()})
}

// Running reports whether the stopwatch is counting.
func (stopwatch *Stopwatch) Running() bool {
	return stopwatch.running
}

// Elapsed returns the accumulated time, live while running.
func (stopwatch *Stopwatch) Elapsed() time.Duration {
	if stopwatch.running {
		return stopwatch.clock.Now().Sub(stopwatch.startRef)
	}
	return stopwatch.elapsed
}

// Display returns the last rendered MM:SS.cc value.
func (stopwatch *Stopwatch) Display() string {
	return stopwatch.display
}

// LapTimes returns the recorded lap displays in order.
func (stopwatch *Stopwatch) LapTimes() []string {
	return append([]string(nil), stopwatch.laps...)
}

// Laps returns the recorded laps as "Lap N: MM:SS.cc".
func (stopwatch *Stopwatch) Laps() []string {
	labels := make([]string, len(stopwatch.laps))
	for i, lap := range stopwatch.laps {
		labels[i] = FormatLap(i+1, lap)
	}
	return labels
}

// Snapshot returns the current state.
func (stopwatch *Stopwatch) Snapshot() StopwatchSnapshot {
	state := StateIdle
	if stopwatch.running {
		state = StateRunning
	}
	return StopwatchSnapshot{
		State:   state,
		Display: stopwatch.display,
		Elapsed: stopwatch.Elapsed(),
		Laps:    stopwatch.Laps(),
	}
}

func (stopwatch *Stopwatch) refresh(now time.Time) {
	stopwatch.elapsed = now.Sub(stopwatch.startRef)
	stopwatch.display = FormatStopwatch(stopwatch.elapsed)
	stopwatch.emit(Event{Type: EventProgress, State: StateRunning, Display: stopwatch.display, At: now})
}

func (stopwatch *Stopwatch) scheduleTick() {
	stopwatch.cancelTick()
	stopwatch.pending = stopwatch.scheduler.Schedule(stopwatch.config.RefreshInterval, stopwatch.Tick)
}

func (stopwatch *Stopwatch) cancelTick() {
	if stopwatch.pending != 0 {
		stopwatch.scheduler.Cancel(stopwatch.pending)
		stopwatch.pending = 0
	}
}
