package usecase

import (
	"bookme/internal/schedule"
	"bookme/internal/schedule/repository"
	"bookme/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new schedule UseCase implementation.
func New(repo repository.Repository, l log.Logger) schedule.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
