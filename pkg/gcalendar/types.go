package gcalendar

import "time"

const (
	// PrimaryCalendarID addresses the authorized account's main calendar.
	PrimaryCalendarID = "primary"

	responseAccepted    = "accepted"
	responseNeedsAction = "needsAction"
)

// Attendee is a guest invited to an event.
type Attendee struct {
	Email    string
	Accepted bool // organizer-side guests are pre-accepted
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	Attendees   []Attendee

	// ConferenceRequestID, when set, asks Google to attach a Meet conference.
	// It must be unique per event.
	ConferenceRequestID string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	MeetLink    string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
	Transparent bool // "free" events do not block time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64 // page size; 0 uses the API default
}
