package eventtype

import "errors"

var (
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrDuplicateName     = errors.New("event type name already exists")
	ErrInvalidDuration   = errors.New("duration must be 15, 30, 45 or 60 minutes")
	ErrInvalidHorizon    = errors.New("horizon must be between 1 and 365 days")
	ErrInvalidLocation   = errors.New("location must be PHONE or GMEET")
	ErrInvalidName       = errors.New("name must contain at least one letter or digit")
)
