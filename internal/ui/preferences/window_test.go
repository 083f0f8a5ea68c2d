package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func TestSaveAppliesValidEntries(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.refresh.SetText("25")
	prefs.check.SetText("nope")
	prefs.alarmMsg.SetText("  Meeting  ")
	prefs.countdownMsg.SetText("   ")
	prefs.beep.SetChecked(false)
	prefs.logLevel.SetSelected("debug")

	test.Tap(prefs.save)

	require.Len(t, saved, 1)
	got := saved[0]
	require.Equal(t, 25*time.Millisecond, got.StopwatchRefresh)
	require.Equal(t, time.Second, got.AlarmCheck)
	require.Equal(t, "Meeting", got.AlarmMessage)
	require.Equal(t, "Time's up!", got.CountdownMessage)
	require.False(t, got.BeepEnabled)
	require.True(t, got.NotifyEnabled)
	require.Equal(t, "debug", got.LogLevel)
	require.Equal(t, "1000", prefs.check.Text)
}
