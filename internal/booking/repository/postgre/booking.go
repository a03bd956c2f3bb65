package postgre

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"bookme/internal/availability"
	"bookme/internal/booking"
	repo "bookme/internal/booking/repository"
	"bookme/internal/model"
	"bookme/pkg/postgres"
)

const bookingColumns = `id::text, COALESCE(event_type_id::text, ''), event_type_name, location_type,
	name, email, phone, description, start_time, end_time, timezone, status,
	calendar_event_id, calendar_link, meet_link, created_at, updated_at`

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.EventTypeID, &b.EventTypeName, &b.LocationType,
		&b.Name, &b.Email, &b.Phone, &b.Description, &b.Start, &b.End, &b.Timezone, &b.Status,
		&b.CalendarEventID, &b.CalendarLink, &b.MeetLink, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// CreateBooking inserts a pending booking. The table's exclusion constraint
// rejects overlaps with any booking that has not failed.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	query := `
		INSERT INTO bookings (event_type_id, event_type_name, location_type, name, email, phone,
			description, start_time, end_time, timezone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRow(ctx, query,
		opt.EventTypeID, opt.EventTypeName, opt.LocationType, opt.Name, opt.Email, opt.Phone,
		opt.Description, opt.Start, opt.End, opt.Timezone, model.BookingPending,
	))
	if postgres.IsExclusionViolation(err) {
		return booking.Booking{}, repo.ErrSlotTaken
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking returns a zero Booking when id does not exist.
func (r *implRepository) GetOneBooking(ctx context.Context, id string) (booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if postgres.IsNoRows(err) {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ConfirmBooking stores the calendar references and marks the booking confirmed.
func (r *implRepository) ConfirmBooking(ctx context.Context, opt repo.ConfirmBookingOptions) (booking.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, calendar_event_id = $2, calendar_link = $3, meet_link = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + bookingColumns

	b, err := scanBooking(r.db.QueryRow(ctx, query,
		model.BookingConfirmed, opt.CalendarEventID, opt.CalendarLink, opt.MeetLink, opt.ID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ConfirmBooking"), err)
		return booking.Booking{}, repo.ErrFailedToUpdate
	}
	return b, nil
}

// MarkFailed releases the booking's time range.
func (r *implRepository) MarkFailed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, model.BookingFailed, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkFailed"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListBusy returns the ranges of pending and confirmed bookings overlapping [lower, upper).
func (r *implRepository) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	const query = `
		SELECT start_time, end_time FROM bookings
		WHERE status <> $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, model.BookingFailed, lower, upper)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBusy"), err)
		return nil, repo.ErrFailedToList
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.BusyInterval, error) {
		var bi availability.BusyInterval
		err := row.Scan(&bi.Start, &bi.End)
		return bi, err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBusy"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
