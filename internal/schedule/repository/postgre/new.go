package postgre

import (
	"fmt"

	"bookme/internal/schedule/repository"
	"bookme/pkg/log"
	"bookme/pkg/postgres"
)

type implRepository struct {
	db postgres.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the schedule domain.
func New(db postgres.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/postgre.%s", method)
}
