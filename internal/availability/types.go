package availability

import (
	"fmt"
	"strings"
	"time"
)

// SupportedDurations lists the event lengths a slot request may ask for.
var SupportedDurations = []time.Duration{
	15 * time.Minute,
	30 * time.Minute,
	45 * time.Minute,
	60 * time.Minute,
}

// DaySchedule is the working-hours entry for one weekday.
type DaySchedule struct {
	Off   bool
	Start *Clock
	End   *Clock
}

// WeeklySchedule holds one DaySchedule per weekday, indexed by time.Weekday.
// Start and end times are wall-clock times in Location, the owner's reference
// timezone. A nil Location means UTC.
type WeeklySchedule struct {
	Days     [7]DaySchedule
	Location *time.Location
}

// Day returns the entry for wd.
func (s WeeklySchedule) Day(wd time.Weekday) DaySchedule {
	return s.Days[wd]
}

// Loc returns the schedule's reference timezone.
func (s WeeklySchedule) Loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// Validate checks that every working day has a start before its end.
// Errors wrap ErrConfiguration and name the offending day.
func (s WeeklySchedule) Validate() error {
	for wd, d := range s.Days {
		if d.Off {
			continue
		}
		name := WeekdayAbbrev(time.Weekday(wd))
		if d.Start == nil {
			return fmt.Errorf("%w: %s start is required", ErrConfiguration, name)
		}
		if d.End == nil {
			return fmt.Errorf("%w: %s end is required", ErrConfiguration, name)
		}
		if !d.Start.Before(*d.End) {
			return fmt.Errorf("%w: %s start %s must be before end %s", ErrConfiguration, name, d.Start, d.End)
		}
	}
	return nil
}

// WeekdayAbbrev returns the lowercase three-letter name of wd ("mon").
func WeekdayAbbrev(wd time.Weekday) string {
	return strings.ToLower(wd.String()[:3])
}

// BusyInterval is a half-open [Start, End) range during which nothing may be booked.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Window is a half-open bookable range.
type Window struct {
	Start time.Time
	End   time.Time
}

// SlotRequest asks for the open slots of one caller-local date.
type SlotRequest struct {
	Date     Date
	Duration time.Duration
	Location *time.Location
}

// NewSlotRequest validates and builds a SlotRequest. An empty tz means UTC.
func NewSlotRequest(date Date, durationMinutes int, tz string) (SlotRequest, error) {
	d := time.Duration(durationMinutes) * time.Minute
	if !IsSupportedDuration(d) {
		return SlotRequest{}, fmt.Errorf("%w: unsupported duration %d minutes", ErrInvalidRequest, durationMinutes)
	}
	loc, err := LoadLocation(tz)
	if err != nil {
		return SlotRequest{}, err
	}
	return SlotRequest{Date: date, Duration: d, Location: loc}, nil
}

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q", ErrInvalidRequest, tz)
	}
	return loc, nil
}

// IsSupportedDuration reports whether d is one of SupportedDurations.
func IsSupportedDuration(d time.Duration) bool {
	for _, s := range SupportedDurations {
		if d == s {
			return true
		}
	}
	return false
}

// Result is the ordered list of bookable slot starts, expressed in the caller's timezone.
type Result struct {
	Slots []time.Time
}
