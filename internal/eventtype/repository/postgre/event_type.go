package postgre

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookme/internal/eventtype"
	repo "bookme/internal/eventtype/repository"
	"bookme/pkg/postgres"
)

// CreateEventType inserts a new EventType row and returns the created entity.
func (r *implRepository) CreateEventType(ctx context.Context, opt repo.CreateEventTypeOptions) (eventtype.EventType, error) {
	query := `
		INSERT INTO event_types (name, slug, duration_minutes, horizon_days, location_type, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + eventTypeColumns

	et, err := scanEventType(r.db.QueryRow(ctx, query,
		opt.Name, opt.Slug, opt.DurationMinutes, opt.HorizonDays, opt.LocationType, opt.Description,
	))
	if postgres.IsUniqueViolation(err) {
		return eventtype.EventType{}, repo.ErrDuplicateSlug
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEventType"), err)
		return eventtype.EventType{}, repo.ErrFailedToInsert
	}
	return et, nil
}

// GetOneEventType retrieves a single EventType by the provided filters (AND condition).
// Returns zero-value EventType (ID == "") when not found.
func (r *implRepository) GetOneEventType(ctx context.Context, opt repo.GetOneEventTypeOptions) (eventtype.EventType, error) {
	// A malformed id cannot match the uuid column.
	if opt.ID != "" {
		if _, err := uuid.Parse(opt.ID); err != nil {
			return eventtype.EventType{}, nil
		}
	}

	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM event_types WHERE %s LIMIT 1", eventTypeColumns, mods)

	et, err := scanEventType(r.db.QueryRow(ctx, query, args...))
	if postgres.IsNoRows(err) {
		return eventtype.EventType{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEventType"), err)
		return eventtype.EventType{}, repo.ErrFailedToGet
	}
	return et, nil
}

// ListEventTypes returns a page of EventTypes and the total count.
func (r *implRepository) ListEventTypes(ctx context.Context, opt repo.ListEventTypesOptions) ([]eventtype.EventType, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM event_types").Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEventTypes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM event_types %s", eventTypeColumns, mods)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEventTypes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []eventtype.EventType
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEventTypes"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, et)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEventTypes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateEventType overwrites an EventType by ID and returns the updated entity.
func (r *implRepository) UpdateEventType(ctx context.Context, opt repo.UpdateEventTypeOptions) (eventtype.EventType, error) {
	query := `
		UPDATE event_types
		SET name = $1, slug = $2, duration_minutes = $3, horizon_days = $4,
		    location_type = $5, description = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + eventTypeColumns

	et, err := scanEventType(r.db.QueryRow(ctx, query,
		opt.Name, opt.Slug, opt.DurationMinutes, opt.HorizonDays, opt.LocationType, opt.Description, opt.ID,
	))
	if postgres.IsNoRows(err) {
		return eventtype.EventType{}, nil
	}
	if postgres.IsUniqueViolation(err) {
		return eventtype.EventType{}, repo.ErrDuplicateSlug
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventType"), err)
		return eventtype.EventType{}, repo.ErrFailedToUpdate
	}
	return et, nil
}

// DeleteEventType removes an EventType by ID. Past bookings keep their copy of the event details.
func (r *implRepository) DeleteEventType(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM event_types WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventType"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
