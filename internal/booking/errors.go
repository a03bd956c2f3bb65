package booking

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
	ErrSlotUnavailable     = errors.New("the requested time is no longer available")
	ErrDateOutOfRange      = errors.New("date is outside the bookable range")
	ErrPhoneRequired       = errors.New("a phone number is required for phone calls")
	ErrScheduleUnavailable = errors.New("scheduling temporarily unavailable")
	ErrCalendarUnavailable = errors.New("calendar service unavailable")
)
