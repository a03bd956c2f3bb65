package usecase

import (
	"context"
	"errors"

	"bookme/internal/eventtype"
	repo "bookme/internal/eventtype/repository"
)

// Create creates a new EventType after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input eventtype.CreateInput) (eventtype.CreateOutput, error) {
	slug := slugify(input.Name)
	if slug == "" {
		return eventtype.CreateOutput{}, eventtype.ErrInvalidName
	}
	horizon := coalesce(input.HorizonDays, eventtype.DefaultHorizonDays)
	if err := validate(input.DurationMinutes, horizon, input.LocationType); err != nil {
		return eventtype.CreateOutput{}, err
	}

	existing, err := uc.repo.GetOneEventType(ctx, repo.GetOneEventTypeOptions{Slug: slug})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneEventType: %v", err)
		return eventtype.CreateOutput{}, err
	}
	if existing.ID != "" {
		return eventtype.CreateOutput{}, eventtype.ErrDuplicateName
	}

	et, err := uc.repo.CreateEventType(ctx, repo.CreateEventTypeOptions{
		Name:            input.Name,
		Slug:            slug,
		DurationMinutes: input.DurationMinutes,
		HorizonDays:     horizon,
		LocationType:    input.LocationType,
		Description:     input.Description,
	})
	if errors.Is(err, repo.ErrDuplicateSlug) {
		return eventtype.CreateOutput{}, eventtype.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEventType: %v", err)
		return eventtype.CreateOutput{}, err
	}

	return eventtype.CreateOutput{EventType: et}, nil
}
