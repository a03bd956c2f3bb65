package usecase

import (
	"context"

	"bookme/internal/eventtype"
	repo "bookme/internal/eventtype/repository"
)

// List returns a page of EventTypes ordered by name.
func (uc *implUseCase) List(ctx context.Context, input eventtype.ListInput) (eventtype.ListOutput, error) {
	items, total, err := uc.repo.ListEventTypes(ctx, repo.ListEventTypesOptions{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: "name ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEventTypes: %v", err)
		return eventtype.ListOutput{}, err
	}

	return eventtype.ListOutput{
		EventTypes: items,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}
