package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetabs/internal/core/model"
	"timetabs/internal/core/schedule"
)

func newTestAlarm() (*Alarm, *schedule.Manual, *recordingAlerter) {
	manual := newManual()
	alerter := &recordingAlerter{}
	return NewAlarm(manual, manual, alerter, model.AlarmConfig{}), manual, alerter
}

func TestAlarmTargetLaterToday(t *testing.T) {
	t.Parallel()

	alarm, manual, _ := newTestAlarm()
	require.NoError(t, alarm.Set("13", "30", ""))

	want := time.Date(2024, time.June, 12, 13, 30, 0, 0, time.Local)
	require.True(t, alarm.Armed())
	require.True(t, want.Equal(alarm.Target()))
	require.Equal(t, "Alarm set for 13:30:00", alarm.Label())
	require.Equal(t, 90*time.Minute, alarm.Remaining())
	require.Equal(t, 1, manual.Pending())
}

func TestAlarmTargetRollsToTomorrow(t *testing.T) {
	t.Parallel()

	alarm, _, _ := newTestAlarm()
	require.NoError(t, alarm.Set("7", "", ""))
	require.True(t, time.Date(2024, time.June, 13, 7, 0, 0, 0, time.Local).Equal(alarm.Target()))

	// The current second itself is not strictly in the future.
	require.NoError(t, alarm.Set("12", "0", "0"))
	require.True(t, time.Date(2024, time.June, 13, 12, 0, 0, 0, time.Local).Equal(alarm.Target()))
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.December, 31, 23, 59, 30, 500, time.Local)
	next := NextOccurrence(now, ClockTime{Hour: 23, Minute: 59, Second: 30})
	require.True(t, time.Date(2025, time.January, 1, 23, 59, 30, 0, time.Local).Equal(next))

	next = NextOccurrence(now, ClockTime{Hour: 23, Minute: 59, Second: 31})
	require.True(t, time.Date(2024, time.December, 31, 23, 59, 31, 0, time.Local).Equal(next))
}

func TestAlarmFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	alarm, manual, alerter := newTestAlarm()
	require.NoError(t, alarm.Set("12", "0", "5"))

	manual.Advance(4 * time.Second)
	require.True(t, alarm.Armed())
	require.Empty(t, alerter.messages)

	manual.Advance(time.Second)
	require.False(t, alarm.Armed())
	require.Equal(t, "No alarm set", alarm.Label())
	require.Equal(t, []string{"Wake up!"}, alerter.messages)
	require.Equal(t, 1, alerter.beeps)
	require.Zero(t, manual.Pending())

	manual.Advance(time.Hour)
	alarm.Tick()
	require.Len(t, alerter.messages, 1)
}

func TestAlarmCancel(t *testing.T) {
	t.Parallel()

	alarm, manual, alerter := newTestAlarm()
	alarm.Cancel()
	require.False(t, alarm.Armed())

	require.NoError(t, alarm.Set("12", "0", "3"))
	alarm.Cancel()
	require.False(t, alarm.Armed())
	require.Equal(t, "No alarm set", alarm.Label())
	require.Zero(t, alarm.Remaining())
	require.Zero(t, manual.Pending())

	manual.Advance(time.Minute)
	require.Empty(t, alerter.messages)
}

func TestAlarmResetWhileArmedKeepsOneCheck(t *testing.T) {
	t.Parallel()

	alarm, manual, alerter := newTestAlarm()
	require.NoError(t, alarm.Set("12", "0", "3"))
	manual.Advance(500 * time.Millisecond)
	require.NoError(t, alarm.Set("12", "0", "10"))
	require.Equal(t, 1, manual.Pending())

	manual.Advance(5 * time.Second)
	require.Empty(t, alerter.messages)

	manual.Advance(5 * time.Second)
	require.Len(t, alerter.messages, 1)
}

func TestAlarmInvalidInputLeavesState(t *testing.T) {
	t.Parallel()

	alarm, manual, _ := newTestAlarm()
	require.NoError(t, alarm.Set("18", "", ""))
	target := alarm.Target()

	require.ErrorIs(t, alarm.Set("x", "", ""), ErrInvalidInput)
	require.ErrorIs(t, alarm.Set("", "75", ""), ErrInvalidInput)

	require.True(t, alarm.Armed())
	require.Equal(t, target, alarm.Target())
	require.Equal(t, "Alarm set for 18:00:00", alarm.Label())
	require.Equal(t, 1, manual.Pending())
}
