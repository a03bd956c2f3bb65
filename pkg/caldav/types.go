package caldav

import "time"

// Config holds connection settings for a CalDAV server.
type Config struct {
	Endpoint string
	Username string
	Password string
	// CalendarPath is used as-is when set; otherwise the calendar is discovered by CalendarName.
	CalendarPath string
	CalendarName string
}

// Event is the subset of a VEVENT needed to block time.
type Event struct {
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Transparent bool
	Cancelled   bool
}
