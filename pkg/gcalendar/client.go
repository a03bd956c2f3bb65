package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"bookme/pkg/log"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON
// file. tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, l log.Logger, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, l, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
// Service Account credentials are tried first, then OAuth installed-app
// credentials paired with the token stored at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, l log.Logger, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: service account: %w; oauth client: %w", err, cfgErr)
	}

	tok, tokErr := readToken(tokenPath)
	if tokErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but token %q is unusable: %w", tokenPath, tokErr)
	}

	ts := &savingTokenSource{
		ctx:  ctx,
		l:    l,
		base: oauthConfig.TokenSource(ctx, tok),
		path: tokenPath,
		last: tok.AccessToken,
	}
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(tok, ts)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a confirmed event and emails every attendee an invitation.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Status:      "confirmed",
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		Reminders: &calendar.EventReminders{UseDefault: true},
	}

	for _, a := range req.Attendees {
		status := responseNeedsAction
		if a.Accepted {
			status = responseAccepted
		}
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{
			Email:          a.Email,
			ResponseStatus: status,
		})
	}

	if req.ConferenceRequestID != "" {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId:             req.ConferenceRequestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		}
	}

	created, err := c.service.Events.Insert(calendarIDOrPrimary(req.CalendarID), event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		MeetLink:    created.HangoutLink,
		Status:      created.Status,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    created.Location,
	}, nil
}

// ListEvents returns every event overlapping [TimeMin, TimeMax), following
// page tokens until the listing is exhausted. Recurring events are expanded.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarIDOrPrimary(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		page, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		loc := time.UTC
		if page.TimeZone != "" {
			if l, lerr := time.LoadLocation(page.TimeZone); lerr == nil {
				loc = l
			}
		}

		for _, item := range page.Items {
			ev, ok := toEvent(item, loc)
			if !ok {
				continue
			}
			events = append(events, ev)
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return events, nil
}

// toEvent converts an API event. All-day dates are interpreted in loc.
func toEvent(item *calendar.Event, loc *time.Location) (Event, bool) {
	if item.Start == nil || item.End == nil {
		return Event{}, false
	}

	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		MeetLink:    item.HangoutLink,
		Status:      item.Status,
		Location:    item.Location,
		Transparent: item.Transparency == "transparent",
	}

	var err error
	if item.Start.DateTime != "" {
		if ev.StartTime, err = time.Parse(time.RFC3339, item.Start.DateTime); err != nil {
			return Event{}, false
		}
		if ev.EndTime, err = time.Parse(time.RFC3339, item.End.DateTime); err != nil {
			return Event{}, false
		}
		return ev, true
	}

	ev.AllDay = true
	if ev.StartTime, err = time.ParseInLocation("2006-01-02", item.Start.Date, loc); err != nil {
		return Event{}, false
	}
	if ev.EndTime, err = time.ParseInLocation("2006-01-02", item.End.Date, loc); err != nil {
		return Event{}, false
	}
	// The API uses an exclusive end date; guard against same-day ends.
	if !ev.EndTime.After(ev.StartTime) {
		ev.EndTime = ev.StartTime.AddDate(0, 0, 1)
	}
	return ev, true
}

func calendarIDOrPrimary(id string) string {
	if id == "" {
		return PrimaryCalendarID
	}
	return id
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return &tok, nil
}
