package repository

import (
	"context"
	"time"

	"bookme/internal/availability"
	"bookme/internal/booking"
)

// Repository is the booking data store.
type Repository interface {
	// CreateBooking returns ErrSlotTaken when the range overlaps a live booking.
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	// GetOneBooking returns a zero Booking (ID == "") when not found.
	GetOneBooking(ctx context.Context, id string) (booking.Booking, error)
	ConfirmBooking(ctx context.Context, opt ConfirmBookingOptions) (booking.Booking, error)
	MarkFailed(ctx context.Context, id string) error
	// ListBusy returns the ranges of live bookings overlapping [lower, upper).
	ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error)
}
