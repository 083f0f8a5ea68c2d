package timekeeper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	total, err := ParseDuration("", "0", "5")
	require.NoError(t, err)
	require.Equal(t, 5, total)

	total, err = ParseDuration("1", " 2 ", "3")
	require.NoError(t, err)
	require.Equal(t, 3723, total)

	total, err = ParseDuration("", "1", "-5")
	require.NoError(t, err)
	require.Equal(t, 55, total)

	_, err = ParseDuration("x", "", "")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorContains(t, err, "hours")

	_, err = ParseDuration("", "", "1.5")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDuration("", "", "")
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ParseDuration("0", "0", "-1")
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ParseDuration("5124095576030432", "", "")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorContains(t, err, "hours")

	_, err = ParseDuration("", "-9223372036854775808", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseDuration("", "", "99999999999999999999")
	require.ErrorIs(t, err, ErrInvalidInput)

	total, err = ParseDuration("100000", "", "")
	require.NoError(t, err)
	require.Equal(t, 360000000, total)
}

func TestParseClockTime(t *testing.T) {
	t.Parallel()

	clock, err := ParseClockTime("7", "", "30")
	require.NoError(t, err)
	require.Equal(t, ClockTime{Hour: 7, Minute: 0, Second: 30}, clock)

	clock, err = ParseClockTime("", "", "")
	require.NoError(t, err)
	require.Equal(t, ClockTime{}, clock)

	for _, fields := range [][3]string{
		{"24", "", ""},
		{"", "75", ""},
		{"", "", "60"},
		{"-1", "", ""},
		{"seven", "", ""},
	} {
		_, err := ParseClockTime(fields[0], fields[1], fields[2])
		require.ErrorIs(t, err, ErrInvalidInput, fields)
	}
}
