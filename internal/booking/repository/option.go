package repository

import (
	"time"

	"bookme/internal/model"
)

// CreateBookingOptions holds parameters for inserting a pending Booking.
type CreateBookingOptions struct {
	EventTypeID   string
	EventTypeName string
	LocationType  model.LocationType
	Name          string
	Email         string
	Phone         string
	Description   string
	Start         time.Time
	End           time.Time
	Timezone      string
}

// ConfirmBookingOptions records the calendar event created for a Booking.
type ConfirmBookingOptions struct {
	ID              string
	CalendarEventID string
	CalendarLink    string
	MeetLink        string
}
