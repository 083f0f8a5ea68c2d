package timekeeper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseField reads an optional integer entry. Blank means zero.
func parseField(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, value)
	}
	return parsed, nil
}

// fieldBudget bounds each duration field in seconds so that the sum of all
// three fits in an int.
const fieldBudget = math.MaxInt / 3

// ParseDuration converts hour, minute and second entries to whole seconds.
// Individual fields may be negative as long as the total is positive.
func ParseDuration(hours, minutes, seconds string) (int, error) {
	h, err := parseDurationField("hours", hours, 3600)
	if err != nil {
		return 0, err
	}
	m, err := parseDurationField("minutes", minutes, 60)
	if err != nil {
		return 0, err
	}
	s, err := parseDurationField("seconds", seconds, 1)
	if err != nil {
		return 0, err
	}

	total := h*3600 + m*60 + s
	if total <= 0 {
		return 0, fmt.Errorf("%w: total must be greater than zero", ErrInvalidDuration)
	}
	return total, nil
}

func parseDurationField(name, value string, unit int) (int, error) {
	parsed, err := parseField(name, value)
	if err != nil {
		return 0, err
	}
	limit := fieldBudget / unit
	if parsed > limit || parsed < -limit {
		return 0, fmt.Errorf("%w: %s %d is too large", ErrInvalidInput, name, parsed)
	}
	return parsed, nil
}

// ClockTime is a time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime reads hour (0-23), minute and second (0-59) entries.
func ParseClockTime(hour, minute, second string) (ClockTime, error) {
	h, err := parseClockField("hour", hour, 23)
	if err != nil {
		return ClockTime{}, err
	}
	m, err := parseClockField("minute", minute, 59)
	if err != nil {
		return ClockTime{}, err
	}
	s, err := parseClockField("second", second, 59)
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: h, Minute: m, Second: s}, nil
}

func parseClockField(name, value string, limit int) (int, error) {
	parsed, err := parseField(name, value)
	if err != nil {
		return 0, err
	}
	if parsed < 0 || parsed > limit {
		return 0, fmt.Errorf("%w: %s %d outside 0-%d", ErrInvalidInput, name, parsed, limit)
	}
	return parsed, nil
}
