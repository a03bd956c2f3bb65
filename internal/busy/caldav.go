package busy

import (
	"context"
	"time"

	"bookme/internal/availability"
	"bookme/pkg/caldav"
)

// CalDAVLister is the part of the CalDAV client this source uses.
type CalDAVLister interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]caldav.Event, error)
}

type caldavSource struct {
	client CalDAVLister
}

// NewCalDAV reads busy time from a CalDAV calendar.
func NewCalDAV(client CalDAVLister) Source {
	return &caldavSource{client: client}
}

func (s *caldavSource) ListBusy(ctx context.Context, lower, upper time.Time) ([]availability.BusyInterval, error) {
	events, err := s.client.ListEvents(ctx, lower, upper)
	if err != nil {
		return nil, err
	}

	var out []availability.BusyInterval
	for _, ev := range events {
		if ev.Transparent || ev.Cancelled || !ev.End.After(ev.Start) {
			continue
		}
		out = append(out, availability.BusyInterval{Start: ev.Start, End: ev.End})
	}
	return out, nil
}
