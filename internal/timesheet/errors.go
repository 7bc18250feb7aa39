package timesheet

import "errors"

var (
	// ErrInvalidPeriod marks a work period whose end time is not strictly
	// after its start time. The failure is local to the offending record;
	// callers decide whether to skip it or abort the whole computation.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrTooManyPeriods marks a same-date merge that would exceed the
	// per-day period cap.
	ErrTooManyPeriods = errors.New("too many periods")

	// ErrInvalidConfig marks a missing or non-monotonic break rule table.
	ErrInvalidConfig = errors.New("invalid config")
)
