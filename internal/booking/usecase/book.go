package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookme/internal/availability"
	"bookme/internal/booking"
	repo "bookme/internal/booking/repository"
	"bookme/internal/eventtype"
	"bookme/internal/model"
	"bookme/pkg/gcalendar"
)

// Book reserves input.Start for the booker. The start must be one of the
// slots currently offered for its caller-local date.
func (uc *implUseCase) Book(ctx context.Context, input booking.BookInput) (booking.BookOutput, error) {
	detail, err := uc.eventTypes.DetailBySlug(ctx, input.Slug)
	if err != nil {
		return booking.BookOutput{}, err
	}
	et := detail.EventType

	if et.LocationType == model.LocationPhone && strings.TrimSpace(input.Phone) == "" {
		return booking.BookOutput{}, booking.ErrPhoneRequired
	}

	loc, err := availability.LoadLocation(input.Timezone)
	if err != nil {
		return booking.BookOutput{}, err
	}
	start := input.Start.In(loc)

	res, err := uc.computeSlots(ctx, et, availability.DateOf(start), input.Timezone, uc.now())
	if err != nil {
		return booking.BookOutput{}, err
	}
	if !res.Contains(start) {
		return booking.BookOutput{}, booking.ErrSlotUnavailable
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		EventTypeID:   et.ID,
		EventTypeName: et.Name,
		LocationType:  et.LocationType,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Description:   input.Description,
		Start:         start,
		End:           start.Add(et.Duration()),
		Timezone:      loc.String(),
	})
	if errors.Is(err, repo.ErrSlotTaken) {
		return booking.BookOutput{}, booking.ErrSlotUnavailable
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Book CreateBooking: %v", err)
		return booking.BookOutput{}, err
	}

	confirm := repo.ConfirmBookingOptions{ID: b.ID}
	if uc.calendar != nil {
		ev, err := uc.calendar.CreateEvent(ctx, uc.calendarRequest(et, b))
		if err != nil {
			uc.l.Errorf(ctx, "uc.Book CreateEvent for booking %s: %v", b.ID, err)
			if markErr := uc.repo.MarkFailed(ctx, b.ID); markErr != nil {
				uc.l.Errorf(ctx, "uc.Book MarkFailed %s: %v", b.ID, markErr)
			}
			return booking.BookOutput{}, fmt.Errorf("%w: %w", booking.ErrCalendarUnavailable, err)
		}
		confirm.CalendarEventID = ev.ID
		confirm.CalendarLink = ev.HtmlLink
		confirm.MeetLink = ev.MeetLink
	}

	b, err = uc.repo.ConfirmBooking(ctx, confirm)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Book ConfirmBooking %s: %v", confirm.ID, err)
		return booking.BookOutput{}, err
	}
	uc.l.Infof(ctx, "booking %s confirmed: %s at %s", b.ID, et.Slug, b.Start.Format(time.RFC3339))

	uc.publishConfirmed(ctx, et, b)
	return booking.BookOutput{Booking: b}, nil
}

func (uc *implUseCase) calendarRequest(et eventtype.EventType, b booking.Booking) gcalendar.CreateEventRequest {
	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.owner.CalendarID,
		Summary:     fmt.Sprintf("%s with %s", et.Name, b.Name),
		Description: b.Description,
		StartTime:   b.Start,
		EndTime:     b.End,
		Timezone:    b.Timezone,
		Attendees: []gcalendar.Attendee{
			{Email: uc.owner.Email, Accepted: true},
			{Email: b.Email},
		},
	}
	switch et.LocationType {
	case model.LocationPhone:
		req.Location = b.Phone
	case model.LocationGoogleMeet:
		req.ConferenceRequestID = b.ID
	}
	return req
}

type confirmedMessage struct {
	ID           string    `json:"id"`
	EventType    string    `json:"event_type"`
	LocationType string    `json:"location_type"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Timezone     string    `json:"timezone"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MeetLink     string    `json:"meet_link,omitempty"`
}

// publishConfirmed is best effort: the booking already stands.
func (uc *implUseCase) publishConfirmed(ctx context.Context, et eventtype.EventType, b booking.Booking) {
	if uc.publisher == nil {
		return
	}
	msg := confirmedMessage{
		ID:           b.ID,
		EventType:    et.Slug,
		LocationType: string(b.LocationType),
		Start:        b.Start,
		End:          b.End,
		Timezone:     b.Timezone,
		Name:         b.Name,
		Email:        b.Email,
		MeetLink:     b.MeetLink,
	}
	if err := uc.publisher.Publish(ctx, booking.EventConfirmed, b.ID, msg); err != nil {
		uc.l.Warnf(ctx, "uc.Book publish %s: %v", b.ID, err)
	}
}
