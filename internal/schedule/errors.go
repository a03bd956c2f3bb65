package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("availability schedule has not been configured")
	ErrInvalidSchedule  = errors.New("invalid availability schedule")
)
