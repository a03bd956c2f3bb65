package repository

import "bookme/internal/model"

// CreateEventTypeOptions holds parameters for inserting a new EventType.
type CreateEventTypeOptions struct {
	Name            string
	Slug            string
	DurationMinutes int
	HorizonDays     int
	LocationType    model.LocationType
	Description     string
}

// GetOneEventTypeOptions holds filter parameters for fetching a single EventType.
// All non-empty fields are applied as AND conditions.
type GetOneEventTypeOptions struct {
	ID   string
	Name string
	Slug string
}

// ListEventTypesOptions holds pagination parameters for listing EventTypes.
type ListEventTypesOptions struct {
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateEventTypeOptions holds the full new state of an EventType.
type UpdateEventTypeOptions struct {
	ID              string
	Name            string
	Slug            string
	DurationMinutes int
	HorizonDays     int
	LocationType    model.LocationType
	Description     string
}
