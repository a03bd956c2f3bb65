package postgre

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"bookme/internal/availability"
)

func TestDayColumns(t *testing.T) {
	cols := dayColumns()
	if len(cols) != 21 {
		t.Fatalf("expected 21 columns, got %d", len(cols))
	}
	if cols[0] != "sun_off" || cols[4] != "mon_start" || cols[20] != "sat_end" {
		t.Errorf("unexpected column order %v", cols)
	}
}

func TestUpsertQuery(t *testing.T) {
	q := upsertQuery()
	if !strings.Contains(q, "$22") || strings.Contains(q, "$23") {
		t.Errorf("expected 22 placeholders:\n%s", q)
	}
	if !strings.Contains(q, "ON CONFLICT (id)") {
		t.Errorf("expected singleton upsert:\n%s", q)
	}
}

func TestPgTimeRoundTrip(t *testing.T) {
	c := availability.MustClock("17:45")
	got := fromPgTime(toPgTime(&c))
	if got == nil || *got != c {
		t.Errorf("expected %s, got %v", c, got)
	}
	if fromPgTime(toPgTime(nil)) != nil {
		t.Errorf("expected nil clock for NULL")
	}
}

func TestUpsertArgs(t *testing.T) {
	nine, five := availability.MustClock("09:00"), availability.MustClock("17:00")
	loc, _ := time.LoadLocation("Europe/Berlin")
	weekly := availability.WeeklySchedule{Location: loc}
	weekly.Days[time.Sunday] = availability.DaySchedule{Off: true}
	weekly.Days[time.Monday] = availability.DaySchedule{Start: &nine, End: &five}

	args := upsertArgs(weekly)
	if len(args) != 22 {
		t.Fatalf("expected 22 args, got %d", len(args))
	}
	if args[0] != "Europe/Berlin" || args[1] != true {
		t.Errorf("unexpected leading args %v", args[:2])
	}
	if pt := fromPgTime(args[5].(pgtype.Time)); pt == nil || *pt != nine {
		t.Errorf("unexpected monday start %v", args[5])
	}
}
