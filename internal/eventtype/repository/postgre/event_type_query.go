package postgre

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"bookme/internal/eventtype"
	repo "bookme/internal/eventtype/repository"
)

const eventTypeColumns = `id::text, name, slug, duration_minutes, horizon_days, location_type, description, created_at, updated_at`

var allowedOrderBy = map[string]bool{
	"created_at DESC":      true,
	"created_at ASC":       true,
	"name ASC":             true,
	"duration_minutes ASC": true,
}

func scanEventType(row pgx.Row) (eventtype.EventType, error) {
	var et eventtype.EventType
	err := row.Scan(
		&et.ID, &et.Name, &et.Slug, &et.DurationMinutes, &et.HorizonDays,
		&et.LocationType, &et.Description, &et.CreatedAt, &et.UpdatedAt,
	)
	return et, err
}

// buildGetOneQuery builds WHERE clause + args for GetOneEventType.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventTypeOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}
	if opt.Slug != "" {
		conditions = append(conditions, fmt.Sprintf("slug = $%d", idx))
		args = append(args, opt.Slug)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the ORDER + LIMIT + OFFSET clause for ListEventTypes.
func (r *implRepository) buildListQuery(opt repo.ListEventTypesOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
