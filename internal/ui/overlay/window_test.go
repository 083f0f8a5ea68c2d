package overlay

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"timetabs/internal/core/schedule"
)

func TestNotifyAndDismiss(t *testing.T) {
	app := test.NewTempApp(t)
	clock := schedule.NewManual(time.Date(2024, time.June, 12, 7, 30, 0, 0, time.Local))
	overlay := New(app, clock, Config{Opacity: 200})

	dismissed := 0
	overlay.SetOnDismiss(func() { dismissed++ })

	overlay.Notify("Wake up!")
	require.Equal(t, "Wake up!", overlay.Message())
	require.Equal(t, "07:30:00", overlay.timeLabel.Text)

	test.Tap(overlay.dismiss)
	require.Equal(t, 1, dismissed)
}

func TestNotifyStampsClockTime(t *testing.T) {
	app := test.NewTempApp(t)
	clock := schedule.NewManual(time.Date(2024, time.June, 12, 23, 59, 58, 0, time.Local))
	overlay := New(app, clock, Config{Opacity: 200})

	overlay.Notify("Time's up!")
	require.Equal(t, "23:59:58", overlay.timeLabel.Text)

	clock.Advance(3 * time.Second)
	overlay.Notify("Wake up!")
	require.Equal(t, "00:00:01", overlay.timeLabel.Text)
	require.Equal(t, "Wake up!", overlay.Message())
}
