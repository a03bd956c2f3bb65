package http

import (
	"bookme/internal/eventtype"
	"bookme/pkg/log"
)

type handler struct {
	l  log.Logger
	uc eventtype.UseCase
}

// New creates a new HTTP handler for the event type domain.
func New(l log.Logger, uc eventtype.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
