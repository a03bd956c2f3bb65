package schedule

import (
	"time"

	"bookme/internal/availability"
)

// Schedule is the owner's persisted weekly availability.
type Schedule struct {
	Weekly    availability.WeeklySchedule
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

// DayInput is one weekday's hours as sent by the admin. Times are "HH:MM".
type DayInput struct {
	Off   bool
	Start string
	End   string
}

// ReplaceInput carries a full week, indexed by time.Weekday.
type ReplaceInput struct {
	Timezone string
	Days     [7]DayInput
}
