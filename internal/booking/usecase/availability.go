package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookme/internal/availability"
	"bookme/internal/booking"
	"bookme/internal/eventtype"
	"bookme/internal/schedule"
	"bookme/pkg/datemath"
)

// busyPadding widens the busy lookup so intervals from neighbouring days that
// bleed into the requested day in the caller's timezone are included.
const busyPadding = 24 * time.Hour

// computeSlots runs the availability engine for one caller-local date of et.
func (uc *implUseCase) computeSlots(ctx context.Context, et eventtype.EventType, date availability.Date, tz string, now time.Time) (availability.Result, error) {
	req, err := availability.NewSlotRequest(date, et.DurationMinutes, tz)
	if err != nil {
		return availability.Result{}, err
	}

	parser := datemath.ForLocation(req.Location)
	dayStart := date.Midnight(req.Location)
	if days := parser.DaysBetween(now, dayStart); days < 0 || days > et.HorizonDays {
		return availability.Result{}, fmt.Errorf("%w: %s is not within %d days from today", booking.ErrDateOutOfRange, date, et.HorizonDays)
	}

	weekly, err := uc.schedules.Get(ctx)
	if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, availability.ErrConfiguration) {
		uc.l.Errorf(ctx, "uc.computeSlots schedule: %v", err)
		return availability.Result{}, fmt.Errorf("%w: %w", booking.ErrScheduleUnavailable, err)
	}
	if err != nil {
		return availability.Result{}, err
	}

	dayEnd := date.AddDays(1).Midnight(req.Location)
	intervals, err := uc.busy.ListBusy(ctx, dayStart.Add(-busyPadding), dayEnd.Add(busyPadding))
	if err != nil {
		uc.l.Errorf(ctx, "uc.computeSlots ListBusy: %v", err)
		return availability.Result{}, fmt.Errorf("%w: %w", booking.ErrCalendarUnavailable, err)
	}

	res, err := availability.ComputeAvailability(weekly, intervals, req, now)
	if errors.Is(err, availability.ErrConfiguration) {
		uc.l.Errorf(ctx, "uc.computeSlots ComputeAvailability: %v", err)
		return availability.Result{}, fmt.Errorf("%w: %w", booking.ErrScheduleUnavailable, err)
	}
	return res, err
}

// Slots lists the open start times of an event type on one caller-local date.
func (uc *implUseCase) Slots(ctx context.Context, input booking.SlotsInput) (booking.SlotsOutput, error) {
	et, err := uc.eventTypes.DetailBySlug(ctx, input.Slug)
	if err != nil {
		return booking.SlotsOutput{}, err
	}

	loc, err := availability.LoadLocation(input.Timezone)
	if err != nil {
		return booking.SlotsOutput{}, err
	}

	now := uc.now()
	dayStart, err := datemath.ForLocation(loc).Parse(input.Date, now)
	if err != nil {
		return booking.SlotsOutput{}, fmt.Errorf("%w: %w", availability.ErrInvalidRequest, err)
	}
	date := availability.DateOf(dayStart)

	res, err := uc.computeSlots(ctx, et.EventType, date, input.Timezone, now)
	if err != nil {
		return booking.SlotsOutput{}, err
	}

	return booking.SlotsOutput{
		EventType: et.EventType,
		Date:      date,
		Timezone:  loc.String(),
		Slots:     res.Slots,
	}, nil
}
