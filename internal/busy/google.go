package busy

import (
	"context"
	"time"

	"bookme/internal/availability"
	"bookme/pkg/gcalendar"
)

// GoogleLister is the part of the Google Calendar client this source uses.
type GoogleLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type googleSource struct {
	client     GoogleLister
	calendarID string
}

// NewGoogle reads busy time from a Google calendar. Transparent ("free") and
// cancelled events do not block time.
func NewGoogle(client GoogleLister, calendarID string) Source {
	return &googleSource{client: client, calendarID: calendarID}
}

func (s *googleSource) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	events, err := s.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    lower,
		TimeMax:    upper,
	})
	if err != nil {
		return nil, err
	}

	var out []availability.BusyInterval
	for _, ev := range events {
		if ev.Transparent || ev.Status == "cancelled" {
			continue
		}
		if !ev.EndTime.After(ev.StartTime) {
			continue
		}
		out = append(out, availability.BusyInterval{Start: ev.StartTime, End: ev.EndTime})
	}
	return out, nil
}
