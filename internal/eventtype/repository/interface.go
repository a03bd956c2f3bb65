package repository

import (
	"context"

	"bookme/internal/eventtype"
)

// Repository is the composed interface for the event type data store.
type Repository interface {
	EventTypeRepository
}

// EventTypeRepository defines all data access methods for the EventType entity.
type EventTypeRepository interface {
	CreateEventType(ctx context.Context, opt CreateEventTypeOptions) (eventtype.EventType, error)
	GetOneEventType(ctx context.Context, opt GetOneEventTypeOptions) (eventtype.EventType, error)
	ListEventTypes(ctx context.Context, opt ListEventTypesOptions) ([]eventtype.EventType, int, error)
	UpdateEventType(ctx context.Context, opt UpdateEventTypeOptions) (eventtype.EventType, error)
	DeleteEventType(ctx context.Context, id string) error
}
