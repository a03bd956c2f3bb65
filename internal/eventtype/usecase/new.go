package usecase

import (
	"bookme/internal/eventtype"
	"bookme/internal/eventtype/repository"
	"bookme/pkg/log"
)

// implUseCase is the private implementation of eventtype.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new event type UseCase implementation.
func New(repo repository.Repository, l log.Logger) eventtype.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
