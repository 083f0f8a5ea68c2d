package timekeeper

import "errors"

var (
	// ErrInvalidInput indicates a time field could not be parsed or is out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDuration indicates the parsed duration is not positive.
	ErrInvalidDuration = errors.New("invalid duration")
)
