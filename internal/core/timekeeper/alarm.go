package timekeeper

import (
	"time"

	"go.uber.org/zap"

	"timetabs/internal/core/model"
	"timetabs/internal/core/schedule"
	"timetabs/internal/logger"
)

// AlarmSnapshot is a read-only view of an Alarm.
type AlarmSnapshot struct {
	State  State
	Label  string
	Target time.Time
}

// Alarm fires once when the local wall clock reaches a target time of day.
// It must only be used from the scheduler's dispatch goroutine.
type Alarm struct {
	observers

	scheduler schedule.Scheduler
	clock     schedule.Clock
	alerter   Alerter
	config    model.AlarmConfig
	log       *zap.SugaredLogger

	armed   bool
	target  time.Time
	label   string
	pending schedule.Handle
}

// NewAlarm creates a disarmed alarm.
func NewAlarm(scheduler schedule.Scheduler, clock schedule.Clock, alerter Alerter, config model.AlarmConfig) *Alarm {
	if alerter == nil {
		alerter = noopAlerter{}
	}
	return &Alarm{
		scheduler: scheduler,
		clock:     clock,
		alerter:   alerter,
		config:    config.WithDefaults(),
		log:       logger.Named("alarm"),
		label:     noAlarmLabel,
	}
}

// SetLogger replaces the component logger.
func (alarm *Alarm) SetLogger(log *zap.SugaredLogger) {
	alarm.log = log
}

// UpdateConfig applies new settings from the next check on.
func (alarm *Alarm) UpdateConfig(config model.AlarmConfig) {
	alarm.config = config.WithDefaults()
}

// Set arms the alarm for the next occurrence of the given time of day.
// A time that is not strictly after now rolls over to tomorrow. Setting an
// armed alarm replaces its target. On error the alarm is left as it was.
func (alarm *Alarm) Set(hour, minute, second string) error {
	clock, err := ParseClockTime(hour, minute, second)
	if err != nil {
		alarm.log.Debugw("set rejected", "error", err)
		return err
	}

	now := alarm.clock.Now()
	alarm.cancelCheck()
	alarm.armed = true
	alarm.target = NextOccurrence(now, clock)
	alarm.label = FormatAlarm(alarm.target)
	alarm.log.Infow("alarm armed", "target", alarm.target)

	alarm.emit(Event{Type: EventStateChange, State: StateArmed, Display: alarm.label, At: now})
	alarm.scheduleCheck()
	return nil
}

// Tick compares the clock with the target and fires once it is reached.
func (alarm *Alarm) Tick() {
	alarm.pending = 0
	if !alarm.armed {
		return
	}

	now := alarm.clock.Now()
	if now.Before(alarm.target) {
		alarm.scheduleCheck()
		return
	}

	alarm.armed = false
	alarm.label = noAlarmLabel
	alarm.log.Infow("alarm fired", "target", alarm.target, "message", alarm.config.Message)

	alarm.emit(Event{Type: EventAlert, State: StateFinished, Display: alarm.label, Message: alarm.config.Message, At: now})
	alarm.alerter.Notify(alarm.config.Message)
	alarm.alerter.Beep()
	alarm.emit(Event{Type: EventStateChange, State: StateIdle, Display: alarm.label, At: now})
}

// Cancel disarms the alarm.
func (alarm *Alarm) Cancel() {
	if !alarm.armed {
		return
	}
	alarm.cancelCheck()
	alarm.armed = false
	alarm.label = noAlarmLabel
	alarm.log.Debugw("alarm cancelled", "target", alarm.target)

	alarm.emit(Event{Type: EventStateChange, State: StateIdle, Display: alarm.label, At: alarm.clock.Now()})
}

// Armed reports whether an alarm is pending.
func (alarm *Alarm) Armed() bool {
	return alarm.armed
}

// Target returns the time the alarm fires at. It is only meaningful while armed.
func (alarm *Alarm) Target() time.Time {
	return alarm.target
}

// Remaining returns the time left until the target, or zero when disarmed.
func (alarm *Alarm) Remaining() time.Duration {
	if !alarm.armed {
		return 0
	}
	remaining := alarm.target.Sub(alarm.clock.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Label returns "Alarm set for HH:MM:SS" or "No alarm set".
func (alarm *Alarm) Label() string {
	return alarm.label
}

// Snapshot returns the current state.
func (alarm *Alarm) Snapshot() AlarmSnapshot {
	snapshot := AlarmSnapshot{State: StateIdle, Label: alarm.label}
	if alarm.armed {
		snapshot.State = StateArmed
		snapshot.Target = alarm.target
	}
	return snapshot
}

// NextOccurrence returns the first instant strictly after now whose local
// time of day equals clock.
func NextOccurrence(now time.Time, clock ClockTime) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour, clock.Minute, clock.Second, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

func (alarm *Alarm) scheduleCheck() {
	alarm.cancelCheck()
	alarm.pending = alarm.scheduler.Schedule(alarm.config.CheckInterval, alarm.Tick)
}

func (alarm *Alarm) cancelCheck() {
	if alarm.pending != 0 {
		alarm.scheduler.Cancel(alarm.pending)
		alarm.pending = 0
	}
}
