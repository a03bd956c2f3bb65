package busy

import (
	"context"
	"time"

	"bookme/internal/availability"
)

// ScheduleGetter returns the owner's weekly schedule.
type ScheduleGetter interface {
	Get(ctx context.Context) (availability.WeeklySchedule, error)
}

type closedBlocks struct {
	schedules ScheduleGetter
}

// NewClosedBlocks reports everything outside the owner's working hours as busy.
func NewClosedBlocks(schedules ScheduleGetter) Source {
	return &closedBlocks{schedules: schedules}
}

func (s *closedBlocks) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	weekly, err := s.schedules.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !upper.After(lower) {
		return nil, nil
	}
	if err := weekly.Validate(); err != nil {
		return nil, err
	}

	loc := weekly.Loc()
	var out []availability.BusyInterval
	cursor := lower
	last := availability.DateOf(upper.In(loc))
	for d := availability.DateOf(lower.In(loc)); !d.After(last); d = d.AddDays(1) {
		day := weekly.Day(d.Weekday())
		if day.Off {
			continue
		}
		openAt, closeAt := day.Start.On(d, loc), day.End.On(d, loc)
		if openAt.After(cursor) {
			out = append(out, availability.BusyInterval{Start: cursor, End: minTime(openAt, upper)})
		}
		if closeAt.After(cursor) {
			cursor = closeAt
		}
		if !cursor.Before(upper) {
			return out, nil
		}
	}
	out = append(out, availability.BusyInterval{Start: cursor, End: upper})
	return out, nil
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
