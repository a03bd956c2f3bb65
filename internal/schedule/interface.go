package schedule

import (
	"context"

	"bookme/internal/availability"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context) (availability.WeeklySchedule, error)
	Replace(ctx context.Context, input ReplaceInput) (availability.WeeklySchedule, error)
}
