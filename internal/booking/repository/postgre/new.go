package postgre

import (
	"fmt"

	"bookme/internal/booking/repository"
	"bookme/pkg/log"
	"bookme/pkg/postgres"
)

type implRepository struct {
	db postgres.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the booking domain.
func New(db postgres.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/postgre.%s", method)
}
