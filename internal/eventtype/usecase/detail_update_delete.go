package usecase

import (
	"context"
	"errors"

	"bookme/internal/eventtype"
	repo "bookme/internal/eventtype/repository"
)

// Detail retrieves a single EventType by ID. Returns ErrEventTypeNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (eventtype.DetailOutput, error) {
	return uc.getOne(ctx, "uc.Detail", repo.GetOneEventTypeOptions{ID: id})
}

// DetailBySlug retrieves a single EventType by its public slug.
func (uc *implUseCase) DetailBySlug(ctx context.Context, slug string) (eventtype.DetailOutput, error) {
	return uc.getOne(ctx, "uc.DetailBySlug", repo.GetOneEventTypeOptions{Slug: slug})
}

func (uc *implUseCase) getOne(ctx context.Context, op string, opt repo.GetOneEventTypeOptions) (eventtype.DetailOutput, error) {
	et, err := uc.repo.GetOneEventType(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneEventType: %v", op, err)
		return eventtype.DetailOutput{}, err
	}
	if et.ID == "" {
		return eventtype.DetailOutput{}, eventtype.ErrEventTypeNotFound
	}
	return eventtype.DetailOutput{EventType: et}, nil
}

// Update modifies an existing EventType. A new name regenerates the slug.
func (uc *implUseCase) Update(ctx context.Context, input eventtype.UpdateInput) (eventtype.UpdateOutput, error) {
	existing, err := uc.repo.GetOneEventType(ctx, repo.GetOneEventTypeOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneEventType: %v", err)
		return eventtype.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return eventtype.UpdateOutput{}, eventtype.ErrEventTypeNotFound
	}

	opt := repo.UpdateEventTypeOptions{
		ID:              input.ID,
		Name:            coalesce(input.Name, existing.Name),
		DurationMinutes: coalesce(input.DurationMinutes, existing.DurationMinutes),
		HorizonDays:     coalesce(input.HorizonDays, existing.HorizonDays),
		LocationType:    coalesce(input.LocationType, existing.LocationType),
		Description:     coalesce(input.Description, existing.Description),
	}
	opt.Slug = slugify(opt.Name)
	if opt.Slug == "" {
		return eventtype.UpdateOutput{}, eventtype.ErrInvalidName
	}
	if err := validate(opt.DurationMinutes, opt.HorizonDays, opt.LocationType); err != nil {
		return eventtype.UpdateOutput{}, err
	}

	et, err := uc.repo.UpdateEventType(ctx, opt)
	if errors.Is(err, repo.ErrDuplicateSlug) {
		return eventtype.UpdateOutput{}, eventtype.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEventType: %v", err)
		return eventtype.UpdateOutput{}, err
	}
	if et.ID == "" {
		return eventtype.UpdateOutput{}, eventtype.ErrEventTypeNotFound
	}
	return eventtype.UpdateOutput{EventType: et}, nil
}

// Delete removes an EventType by ID. Returns ErrEventTypeNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneEventType(ctx, repo.GetOneEventTypeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEventType: %v", err)
		return err
	}
	if existing.ID == "" {
		return eventtype.ErrEventTypeNotFound
	}
	if err := uc.repo.DeleteEventType(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEventType: %v", err)
		return err
	}
	return nil
}
