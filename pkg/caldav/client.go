package caldav

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/teambition/rrule-go"
)

const userAgent = "bookme/1.0"

type basicAuthTransport struct {
	Username  string
	Password  string
	Transport http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Username != "" {
		req.SetBasicAuth(t.Username, t.Password)
	}
	req.Header.Set("User-Agent", userAgent)
	return t.Transport.RoundTrip(req)
}

// Client reads events from a single CalDAV calendar.
type Client struct {
	caldav       *caldav.Client
	calendarPath string
}

// NewClient connects to the configured server and resolves the calendar path.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &basicAuthTransport{
			Username:  cfg.Username,
			Password:  cfg.Password,
			Transport: http.DefaultTransport,
		},
	}

	c, err := NewClientFromHTTP(httpClient, cfg.Endpoint, cfg.CalendarPath)
	if err != nil {
		return nil, err
	}
	if c.calendarPath != "" {
		return c, nil
	}

	calendarPath, err := c.findCalendar(ctx, cfg.CalendarName)
	if err != nil {
		return nil, fmt.Errorf("could not find calendar '%s': %w", cfg.CalendarName, err)
	}
	c.calendarPath = calendarPath
	return c, nil
}

// NewClientFromHTTP builds a client for a known calendar path using the given HTTP client.
func NewClientFromHTTP(httpClient *http.Client, endpoint, calendarPath string) (*Client, error) {
	cc, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}
	return &Client{caldav: cc, calendarPath: calendarPath}, nil
}

// CalendarPath returns the resolved calendar collection path.
func (c *Client) CalendarPath() string {
	return c.calendarPath
}

// ListEvents returns the events overlapping [timeMin, timeMax).
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: ical.CompCalendar,
			Comps: []caldav.CalendarCompRequest{{
				Name: ical.CompEvent,
				Props: []string{
					ical.PropUID,
					ical.PropSummary,
					ical.PropDateTimeStart,
					ical.PropDateTimeEnd,
					ical.PropDuration,
					ical.PropTransparency,
					ical.PropStatus,
					ical.PropRecurrenceRule,
					ical.PropRecurrenceDates,
					ical.PropExceptionDates,
					ical.PropRecurrenceID,
				},
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: ical.CompCalendar,
			Comps: []caldav.CompFilter{{
				Name:  ical.CompEvent,
				Start: timeMin.UTC(),
				End:   timeMax.UTC(),
			}},
		},
	}

	objects, err := c.caldav.QueryCalendar(ctx, c.calendarPath, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}

	var events []Event
	for _, obj := range objects {
		if obj.Data == nil {
			continue
		}
		parsed, err := expandObject(obj.Data.Events(), timeMin, timeMax)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event in %s: %w", obj.Path, err)
		}
		events = append(events, parsed...)
	}
	return events, nil
}

// expandObject turns the VEVENTs of one calendar object into the concrete
// events overlapping [timeMin, timeMax). A repeating master yields one event
// per occurrence; occurrences replaced by a RECURRENCE-ID override are
// skipped since the override is returned on its own.
func expandObject(evs []ical.Event, timeMin, timeMax time.Time) ([]Event, error) {
	overridden := make(map[string][]time.Time)
	for _, ev := range evs {
		if ev.Props.Get(ical.PropRecurrenceID) == nil {
			continue
		}
		rid, err := ev.Props.DateTime(ical.PropRecurrenceID, time.UTC)
		if err != nil {
			return nil, err
		}
		uid := ""
		if p := ev.Props.Get(ical.PropUID); p != nil {
			uid = p.Value
		}
		overridden[uid] = append(overridden[uid], rid)
	}

	var out []Event
	for _, ev := range evs {
		base, ok, err := toEvent(ev)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var set *rrule.Set
		if ev.Props.Get(ical.PropRecurrenceID) == nil {
			if set, err = ev.RecurrenceSet(time.UTC); err != nil {
				return nil, err
			}
		}
		if set == nil {
			if base.Start.Before(timeMax) && base.End.After(timeMin) {
				out = append(out, base)
			}
			continue
		}
		for _, rid := range overridden[base.UID] {
			set.ExDate(rid)
		}

		length := base.End.Sub(base.Start)
		for _, start := range set.Between(timeMin.Add(-length), timeMax, false) {
			occ := base
			occ.Start = start
			occ.End = start.Add(length)
			out = append(out, occ)
		}
	}
	return out, nil
}

func (c *Client) findCalendar(ctx context.Context, name string) (string, error) {
	principalPath, err := c.caldav.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find principal path: %w", err)
	}

	homeSetPath, err := c.caldav.FindCalendarHomeSet(ctx, principalPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendar home set: %w", err)
	}

	calendars, err := c.caldav.FindCalendars(ctx, homeSetPath)
	if err != nil {
		return "", fmt.Errorf("failed to find calendars: %w", err)
	}

	for _, cal := range calendars {
		if cal.Name == name {
			return cal.Path, nil
		}
	}
	return "", fmt.Errorf("no calendar found with name '%s'", name)
}
