package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrInvalidRange = errors.New("invalid date range")
)
