package postgre

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"bookme/internal/availability"
)

// dayColumns lists the per-weekday columns in time.Weekday order.
func dayColumns() []string {
	cols := make([]string, 0, 21)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		p := availability.WeekdayAbbrev(wd)
		cols = append(cols, p+"_off", p+"_start", p+"_end")
	}
	return cols
}

func selectQuery() string {
	return fmt.Sprintf(
		`SELECT timezone, %s, updated_at FROM availability_schedule WHERE id = 1`,
		strings.Join(dayColumns(), ", "),
	)
}

// upsertQuery builds the singleton upsert. $1 is the timezone, day columns follow.
func upsertQuery() string {
	cols := dayColumns()
	placeholders := make([]string, len(cols))
	updates := make([]string, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return fmt.Sprintf(`
		INSERT INTO availability_schedule (id, timezone, %s, updated_at)
		VALUES (1, $1, %s, NOW())
		ON CONFLICT (id) DO UPDATE SET timezone = EXCLUDED.timezone, %s, updated_at = NOW()
		RETURNING updated_at`,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
}

func toPgTime(c *availability.Clock) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{
		Microseconds: int64(c.Minutes()) * int64(time.Minute/time.Microsecond),
		Valid:        true,
	}
}

func fromPgTime(t pgtype.Time) *availability.Clock {
	if !t.Valid {
		return nil
	}
	minutes := int(t.Microseconds / int64(time.Minute/time.Microsecond))
	return &availability.Clock{Hour: minutes / 60, Minute: minutes % 60}
}

// upsertArgs flattens weekly into the positional arguments of upsertQuery.
func upsertArgs(weekly availability.WeeklySchedule) []any {
	args := make([]any, 0, 22)
	args = append(args, weekly.Loc().String())
	for _, d := range weekly.Days {
		args = append(args, d.Off, toPgTime(d.Start), toPgTime(d.End))
	}
	return args
}
