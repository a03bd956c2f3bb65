package postgre

import (
	"fmt"

	"bookme/internal/eventtype/repository"
	"bookme/pkg/log"
	"bookme/pkg/postgres"
)

type implRepository struct {
	db postgres.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the event type domain.
func New(db postgres.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("eventtype/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("eventtype/repository/postgre.%s", method)
}
