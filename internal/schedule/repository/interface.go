package repository

import (
	"context"

	"bookme/internal/availability"
	"bookme/internal/schedule"
)

// Repository stores the singleton schedule row.
type Repository interface {
	// GetSchedule returns a zero Schedule (UpdatedAt.IsZero()) when no row exists.
	GetSchedule(ctx context.Context) (schedule.Schedule, error)
	UpsertSchedule(ctx context.Context, weekly availability.WeeklySchedule) (schedule.Schedule, error)
}
