package scheduler

import "errors"

// Error definitions for scheduler package.
var (
	ErrNilJob          = errors.New("job must not be nil")
	ErrInvalidSchedule = errors.New("invalid schedule")
)
