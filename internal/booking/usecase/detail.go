package usecase

import (
	"context"

	"github.com/google/uuid"

	"bookme/internal/booking"
	"bookme/internal/model"
	"bookme/pkg/ics"
)

// Detail retrieves a booking by ID. Returns ErrBookingNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (booking.DetailOutput, error) {
	if _, err := uuid.Parse(id); err != nil {
		return booking.DetailOutput{}, booking.ErrBookingNotFound
	}

	b, err := uc.repo.GetOneBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBooking: %v", err)
		return booking.DetailOutput{}, err
	}
	if b.ID == "" {
		return booking.DetailOutput{}, booking.ErrBookingNotFound
	}
	return booking.DetailOutput{Booking: b}, nil
}

// Invitation renders a confirmed booking as an iCalendar REQUEST.
func (uc *implUseCase) Invitation(ctx context.Context, id string) ([]byte, error) {
	out, err := uc.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	b := out.Booking
	if b.Status != model.BookingConfirmed {
		return nil, booking.ErrBookingNotConfirmed
	}

	location := b.MeetLink
	if b.LocationType == model.LocationPhone {
		location = b.Phone
	}

	return ics.Encode(ics.Invitation{
		UID:         b.ID + "@bookme",
		Summary:     b.EventTypeName + " with " + b.Name,
		Description: b.Description,
		Location:    location,
		Start:       b.Start,
		End:         b.End,
		Organizer:   uc.owner.Email,
		Attendees:   []string{uc.owner.Email, b.Email},
		Stamp:       b.CreatedAt,
	})
}
