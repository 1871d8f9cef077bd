package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrInvalidClockTime = errors.New("invalid clock time, expected HH:MM")
)
