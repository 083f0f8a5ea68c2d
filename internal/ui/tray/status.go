package tray

import (
	"fmt"
	"time"

	"timetabs/internal/core/timekeeper"
)

// BuildStatus summarises the three tools for the tray menu. The stopwatch
// line omits the running time to avoid rebuilding the menu every refresh.
func BuildStatus(stopwatch timekeeper.StopwatchSnapshot, countdown timekeeper.CountdownSnapshot, alarm timekeeper.AlarmSnapshot) (Status, bool) {
	status := Status{
		Stopwatch: "stopped at " + stopwatch.Display,
		Countdown: string(countdown.State),
		Alarm:     "not set",
	}
	if stopwatch.State == timekeeper.StateRunning {
		status.Stopwatch = "running"
	}
	switch countdown.State {
	case timekeeper.StateRunning:
		status.Countdown = "running, " + countdown.Display + " left"
	case timekeeper.StatePaused:
		status.Countdown = "paused at " + countdown.Display
	}
	if alarm.State == timekeeper.StateArmed {
		status.Alarm = fmt.Sprintf("at %s", alarm.Target.Format(time.TimeOnly))
	}

	active := stopwatch.State == timekeeper.StateRunning ||
		countdown.State == timekeeper.StateRunning ||
		alarm.State == timekeeper.StateArmed
	return status, active
}
