package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"bookme/internal/availability"
	"bookme/internal/schedule"
	repo "bookme/internal/schedule/repository"
	"bookme/pkg/postgres"
)

// GetSchedule loads the singleton row. Returns a zero Schedule when the row is missing.
func (r *implRepository) GetSchedule(ctx context.Context) (schedule.Schedule, error) {
	var (
		tz        string
		offs      [7]bool
		starts    [7]pgtype.Time
		ends      [7]pgtype.Time
		updatedAt time.Time
	)
	dest := make([]any, 0, 23)
	dest = append(dest, &tz)
	for i := range offs {
		dest = append(dest, &offs[i], &starts[i], &ends[i])
	}
	dest = append(dest, &updatedAt)

	err := r.db.QueryRow(ctx, selectQuery()).Scan(dest...)
	if postgres.IsNoRows(err) {
		return schedule.Schedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToGet
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		r.l.Errorf(ctx, "%s: stored timezone %q: %v", r.dsn("GetSchedule"), tz, err)
		return schedule.Schedule{}, fmt.Errorf("%w: timezone %q", repo.ErrCorruptRecord, tz)
	}

	weekly := availability.WeeklySchedule{Location: loc}
	for i := range weekly.Days {
		weekly.Days[i] = availability.DaySchedule{
			Off:   offs[i],
			Start: fromPgTime(starts[i]),
			End:   fromPgTime(ends[i]),
		}
	}
	return schedule.Schedule{Weekly: weekly, UpdatedAt: updatedAt}, nil
}

// UpsertSchedule writes weekly into the singleton row, creating it on first use.
func (r *implRepository) UpsertSchedule(ctx context.Context, weekly availability.WeeklySchedule) (schedule.Schedule, error) {
	var updatedAt time.Time
	if err := r.db.QueryRow(ctx, upsertQuery(), upsertArgs(weekly)...).Scan(&updatedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSchedule"), err)
		return schedule.Schedule{}, repo.ErrFailedToUpsert
	}
	return schedule.Schedule{Weekly: weekly, UpdatedAt: updatedAt}, nil
}
