package timekeeper

import (
	"time"

	"go.uber.org/zap"

	"timetabs/internal/core/model"
	"timetabs/internal/core/schedule"
	"timetabs/internal/logger"
)

// CountdownSnapshot is a read-only view of a Countdown.
type CountdownSnapshot struct {
	State     State
	Display   string
	Remaining int
}

// Countdown counts whole seconds down to zero and raises an alert there.
// Like Stopwatch it must only be used from the scheduler's dispatch goroutine.
type Countdown struct {
	observers

	scheduler schedule.Scheduler
	clock     schedule.Clock
	alerter   Alerter
	config    model.CountdownConfig
	log       *zap.SugaredLogger

	running   bool
	finished  bool
	remaining int
	display   string
	pending   schedule.Handle
}

// NewCountdown creates an idle countdown showing 00:00:00.
func NewCountdown(scheduler schedule.Scheduler, clock schedule.Clock, alerter Alerter, config model.CountdownConfig) *Countdown {
	if alerter == nil {
		alerter = noopAlerter{}
	}
	return &Countdown{
		scheduler: scheduler,
		clock:     clock,
		alerter:   alerter,
		config:    config.WithDefaults(),
		log:       logger.Named("countdown"),
		display:   countdownZero,
	}
}

// SetLogger replaces the component logger.
func (countdown *Countdown) SetLogger(log *zap.SugaredLogger) {
	countdown.log = log
}

// UpdateConfig applies new settings from the next tick on.
func (countdown *Countdown) UpdateConfig(config model.CountdownConfig) {
	countdown.config = config.WithDefaults()
}

// Start parses the hour, minute and second entries and begins counting down.
// It does nothing while already running. On error the countdown is left as it was.
func (countdown *Countdown) Start(hours, minutes, seconds string) error {
	if countdown.running {
		return nil
	}
	total, err := ParseDuration(hours, minutes, seconds)
	if err != nil {
		countdown.log.Debugw("start rejected", "error", err)
		return err
	}

	countdown.remaining = total
	countdown.begin()
	return nil
}

// Resume continues a paused countdown from its remaining seconds.
func (countdown *Countdown) Resume() {
	if countdown.running || countdown.remaining <= 0 {
		return
	}
	countdown.begin()
}

// Tick removes one second and either finishes or requests the next tick.
func (countdown *Countdown) Tick() {
	countdown.pending = 0
	if !countdown.running || countdown.remaining <= 0 {
		return
	}

	now := countdown.clock.Now()
	countdown.remaining--
	countdown.display = FormatCountdown(countdown.remaining)
	countdown.emit(Event{Type: EventProgress, State: StateRunning, Display: countdown.display, At: now})

	if countdown.remaining == 0 {
		countdown.running = false
		countdown.finished = true
		countdown.log.Infow("countdown finished", "message", countdown.config.Message)
		countdown.emit(Event{Type: EventStateChange, State: StateFinished, Display: countdown.display, At: now})
		countdown.alert(now)
		return
	}
	countdown.scheduleTick()
}

// Pause stops counting and keeps the remaining seconds.
func (countdown *Countdown) Pause() {
	if !countdown.running {
		return
	}
	countdown.cancelTick()
	countdown.running = false
	countdown.log.Debugw("paused", "remaining", countdown.remaining)

	countdown.emit(Event{Type: EventStateChange, State: StatePaused, Display: countdown.display, At: countdown.clock.Now()})
}

// Reset pauses and clears the remaining seconds.
func (countdown *Countdown) Reset() {
	countdown.Pause()
	countdown.remaining = 0
	countdown.finished = false
	countdown.display = countdownZero
	countdown.log.Debug("reset")

	countdown.emit(Event{Type: EventStateChange, State: StateIdle, Display: countdown.display, At: countdown.clock.Now()})
}

// Running reports whether the countdown is active.
func (countdown *Countdown) Running() bool {
	return countdown.running
}

// Remaining returns the seconds left.
func (countdown *Countdown) Remaining() int {
	return countdown.remaining
}

// Display returns the last rendered HH:MM:SS value.
func (countdown *Countdown) Display() string {
	return countdown.display
}

// Snapshot returns the current state.
func (countdown *Countdown) Snapshot() CountdownSnapshot {
	return CountdownSnapshot{
		State:     countdown.state(),
		Display:   countdown.display,
		Remaining: countdown.remaining,
	}
}

func (countdown *Countdown) state() State {
	switch {
	case countdown.running:
		return StateRunning
	case countdown.finished:
		return StateFinished
	case countdown.remaining > 0:
		return StatePaused
	default:
		return StateIdle
	}
}

func (countdown *Countdown) begin() {
	now := countdown.clock.Now()
	countdown.running = true
	countdown.finished = false
	countdown.display = FormatCountdown(countdown.remaining)
	countdown.log.Debugw("started", "remaining", countdown.remaining)

	countdown.emit(Event{Type: EventStateChange, State: StateRunning, Display: countdown.display, At: now})
	countdown.scheduleTick()
}

func (countdown *Countdown) alert(now time.Time) {
	countdown.emit(Event{Type: EventAlert, State: StateFinished, Display: countdown.display, Message: countdown.config.Message, At: now})
	countdown.alerter.Notify(countdown.config.Message)
	countdown.alerter.Beep()
}

func (countdown *Countdown) scheduleTick() {
	countdown.cancelTick()
	countdown.pending = countdown.scheduler.Schedule(countdown.config.TickInterval, countdown.Tick)
}

func (countdown *Countdown) cancelTick() {
	if countdown.pending != 0 {
		countdown.scheduler.Cancel(countdown.pending)
		countdown.pending = 0
	}
}
