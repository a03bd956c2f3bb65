package usecase

import (
	"context"
	"fmt"

	"bookme/internal/availability"
	"bookme/internal/schedule"
)

// Get returns the stored schedule. A stored schedule that violates the
// working-hours invariants is reported as an availability.ErrConfiguration.
func (uc *implUseCase) Get(ctx context.Context) (availability.WeeklySchedule, error) {
	s, err := uc.repo.GetSchedule(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetSchedule: %v", err)
		return availability.WeeklySchedule{}, err
	}
	if s.UpdatedAt.IsZero() {
		return availability.WeeklySchedule{}, schedule.ErrScheduleNotFound
	}
	if err := s.Weekly.Validate(); err != nil {
		uc.l.Errorf(ctx, "uc.Get stored schedule invalid: %v", err)
		return availability.WeeklySchedule{}, fmt.Errorf("stored schedule: %w", err)
	}
	return s.Weekly, nil
}
