package datemath_test

import (
	"errors"
	"testing"
	"time"

	"bookme/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "Absolute date",
			value: "2024-05-06",
			want:  time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Today",
			value: "today",
			want:  startOfBase,
		},
		{
			name:  "Tomorrow with spaces and caps",
			value: "  Tomorrow ",
			want:  startOfBase.AddDate(0, 0, 1),
		},
		{
			name:  "Yesterday",
			value: "yesterday",
			want:  startOfBase.AddDate(0, 0, -1),
		},
		{
			name:  "In 3 days",
			value: "in 3 days",
			want:  startOfBase.AddDate(0, 0, 3),
		},
		{
			name:  "In 2 weeks",
			value: "in 2 weeks",
			want:  startOfBase.AddDate(0, 0, 14),
		},
		{
			name:  "In 1 month",
			value: "in 1 month",
			want:  startOfBase.AddDate(0, 1, 0),
		},
		{
			name:    "Invalid duration pattern",
			value:   "in a few days",
			wantErr: true,
		},
		{
			name:  "Next Monday (from Wed)",
			value: "next monday",
			want:  startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:  "Next Wednesday (from Wed)",
			value: "next wednesday",
			want:  startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:    "Unknown value",
			value:   "some random day",
			wantErr: true,
		},
		{
			name:    "Invalid Next Weekday",
			value:   "next funday",
			wantErr: true,
		},
		{
			name:    "Invalid calendar date",
			value:   "2024-02-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.value, baseTime)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Fatalf("Parse() error = %v, want ErrUnrecognized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInCallerTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	parser := datemath.ForLocation(loc)
	// 12:00 UTC on May 1 is already May 2 at UTC+14.
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got, err := parser.Parse("today", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y, m, d := got.Date(); y != 2024 || m != time.May || d != 2 {
		t.Errorf("expected 2024-05-02, got %v", got)
	}
	if got.Location() != loc {
		t.Errorf("expected caller location, got %v", got.Location())
	}
}

func TestDaysBetween(t *testing.T) {
	parser := datemath.ForLocation(nil)
	a := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 4, 1, 0, 0, 0, time.UTC)

	if got := parser.DaysBetween(a, b); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := parser.DaysBetween(b, a); got != -3 {
		t.Errorf("expected -3, got %d", got)
	}
}
