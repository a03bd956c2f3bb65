package eventtype

import (
	"time"

	"bookme/internal/model"
)

// DefaultHorizonDays applies when an event type is created without a horizon.
const DefaultHorizonDays = 30

// EventType is a kind of meeting bookers can schedule.
type EventType struct {
	ID              string
	Name            string
	Slug            string
	DurationMinutes int
	// HorizonDays is how far ahead, in days, this event type can be booked.
	HorizonDays  int
	LocationType model.LocationType
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Duration returns the meeting length.
func (e EventType) Duration() time.Duration {
	return time.Duration(e.DurationMinutes) * time.Minute
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name            string
	DurationMinutes int
	HorizonDays     int
	LocationType    model.LocationType
	Description     string
}

type ListInput struct {
	Limit  int
	Offset int
}

// UpdateInput is a partial update: zero-valued fields keep their current value.
type UpdateInput struct {
	ID              string
	Name            string
	DurationMinutes int
	HorizonDays     int
	LocationType    model.LocationType
	Description     string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	EventType EventType
}

type ListOutput struct {
	EventTypes []EventType
	Total      int
	Limit      int
	Offset     int
}

type DetailOutput struct {
	EventType EventType
}

type UpdateOutput struct {
	EventType EventType
}
