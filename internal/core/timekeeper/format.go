package timekeeper

import (
	"fmt"
	"time"
)

const (
	stopwatchZero = "00:00.00"
	countdownZero = "00:00:00"
	noAlarmLabel  = "No alarm set"
)

// FormatStopwatch renders elapsed as MM:SS.cc. Centiseconds are truncated and
// minutes do not wrap at an hour.
func FormatStopwatch(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	centis := int64(elapsed / (10 * time.Millisecond))
	minutes := centis / 6000
	seconds := centis / 100 % 60
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis%100)
}

// FormatCountdown renders whole seconds as HH:MM:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatAlarm renders the label shown while an alarm is armed.
func FormatAlarm(target time.Time) string {
	return "Alarm set for " + target.Format(time.TimeOnly)
}

// FormatLap renders a lap entry with its 1-based position.
func FormatLap(position int, display string) string {
	return fmt.Sprintf("Lap %d: %s", position, display)
}
