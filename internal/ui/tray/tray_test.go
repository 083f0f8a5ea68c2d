package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetabs/internal/core/timekeeper"
)

func TestBuildStatus(t *testing.T) {
	t.Parallel()

	status, active := BuildStatus(
		timekeeper.StopwatchSnapshot{State: timekeeper.StateIdle, Display: "00:04.20"},
		timekeeper.CountdownSnapshot{State: timekeeper.StateIdle, Display: "00:00:00"},
		timekeeper.AlarmSnapshot{State: timekeeper.StateIdle, Label: "No alarm set"},
	)
	require.False(t, active)
	require.Equal(t, Status{Stopwatch: "stopped at 00:04.20", Countdown: "idle", Alarm: "not set"}, status)

	status, active = BuildStatus(
		timekeeper.StopwatchSnapshot{State: timekeeper.StateRunning},
		timekeeper.CountdownSnapshot{State: timekeeper.StatePaused, Display: "00:01:00"},
		timekeeper.AlarmSnapshot{State: timekeeper.StateArmed, Target: time.Date(2024, time.June, 13, 7, 0, 0, 0, time.Local)},
	)
	require.True(t, active)
	require.Equal(t, "running", status.Stopwatch)
	require.Equal(t, "paused at 00:01:00", status.Countdown)
	require.Equal(t, "at 07:00:00", status.Alarm)
}

func TestMenuReflectsStatus(t *testing.T) {
	t.Parallel()

	cancelled := 0
	manager := New(nil, nil, Icons{}, Callbacks{
		OnCancelAlarm:     func() { cancelled++ },
		OnToggleStopwatch: func() {},
	})

	menu := manager.Menu()
	require.Equal(t, "Alarm: not set", manager.alarmItem.Label)
	require.True(t, manager.alarmItem.Disabled)
	require.True(t, manager.countdownItem.Disabled)
	require.False(t, manager.stopwatchItem.Disabled)
	require.Len(t, menu.Items, 8)

	manager.SetStatus(Status{Stopwatch: "running", Countdown: "running, 00:00:09 left", Alarm: "at 07:00:00"}, true)
	manager.Menu()
	require.False(t, manager.alarmItem.Disabled)
	require.False(t, manager.countdownItem.Disabled)

	manager.alarmItem.Action()
	require.Equal(t, 1, cancelled)
}

func TestSetCallbacksRebindsMenu(t *testing.T) {
	t.Parallel()

	manager := New(nil, nil, Icons{}, Callbacks{})
	manager.Menu()
	require.True(t, manager.stopwatchItem.Disabled)

	toggled := 0
	manager.SetCallbacks(Callbacks{OnToggleStopwatch: func() { toggled++ }})
	manager.Menu()
	require.False(t, manager.stopwatchItem.Disabled)

	manager.stopwatchItem.Action()
	require.Equal(t, 1, toggled)
}
