package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatStopwatch(t *testing.T) {
	t.Parallel()

	cases := map[time.Duration]string{
		0:                                     "00:00.00",
		-time.Second:                          "00:00.00",
		1500 * time.Millisecond:               "00:01.50",
		1509 * time.Millisecond:               "00:01.50",
		59*time.Second + 990*time.Millisecond: "00:59.99",
		61*time.Second + 70*time.Millisecond:  "01:01.07",
		61 * time.Minute:                      "61:00.00",
	}
	for elapsed, want := range cases {
		require.Equal(t, want, FormatStopwatch(elapsed), elapsed.String())
	}
}

func TestFormatCountdown(t *testing.T) {
	t.Parallel()

	require.Equal(t, "00:00:00", FormatCountdown(0))
	require.Equal(t, "00:00:00", FormatCountdown(-4))
	require.Equal(t, "00:00:05", FormatCountdown(5))
	require.Equal(t, "01:01:01", FormatCountdown(3661))
	require.Equal(t, "27:46:39", FormatCountdown(99999))
}

func TestFormatAlarmAndLap(t *testing.T) {
	t.Parallel()

	target := time.Date(2024, time.June, 13, 7, 5, 9, 0, time.Local)
	require.Equal(t, "Alarm set for 07:05:09", FormatAlarm(target))
	require.Equal(t, "Lap 2: 00:01.50", FormatLap(2, "00:01.50"))
}
