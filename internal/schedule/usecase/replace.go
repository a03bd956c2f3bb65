package usecase

import (
	"context"
	"fmt"
	"time"

	"bookme/internal/availability"
	"bookme/internal/schedule"
)

// Replace validates input and overwrites the singleton schedule in place.
func (uc *implUseCase) Replace(ctx context.Context, input schedule.ReplaceInput) (availability.WeeklySchedule, error) {
	weekly, err := toWeekly(input)
	if err != nil {
		return availability.WeeklySchedule{}, err
	}
	if err := weekly.Validate(); err != nil {
		return availability.WeeklySchedule{}, fmt.Errorf("%w: %w", schedule.ErrInvalidSchedule, err)
	}

	saved, err := uc.repo.UpsertSchedule(ctx, weekly)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Replace UpsertSchedule: %v", err)
		return availability.WeeklySchedule{}, err
	}
	uc.l.Infof(ctx, "availability schedule replaced (timezone %s)", weekly.Loc())
	return saved.Weekly, nil
}

func toWeekly(input schedule.ReplaceInput) (availability.WeeklySchedule, error) {
	loc, err := availability.LoadLocation(input.Timezone)
	if err != nil {
		return availability.WeeklySchedule{}, fmt.Errorf("%w: %w", schedule.ErrInvalidSchedule, err)
	}

	weekly := availability.WeeklySchedule{Location: loc}
	for i, d := range input.Days {
		name := availability.WeekdayAbbrev(time.Weekday(i))
		day := availability.DaySchedule{Off: d.Off}
		if day.Start, err = parseOptionalClock(d.Start); err != nil {
			return availability.WeeklySchedule{}, fmt.Errorf("%w: %s start: %w", schedule.ErrInvalidSchedule, name, err)
		}
		if day.End, err = parseOptionalClock(d.End); err != nil {
			return availability.WeeklySchedule{}, fmt.Errorf("%w: %s end: %w", schedule.ErrInvalidSchedule, name, err)
		}
		weekly.Days[i] = day
	}
	return weekly, nil
}

func parseOptionalClock(s string) (*availability.Clock, error) {
	if s == "" {
		return nil, nil
	}
	c, err := availability.ParseClock(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
