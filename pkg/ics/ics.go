// Package ics renders iCalendar meeting invitations.
package ics

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

const (
	ProductID     = "-//bookme//EN"
	MethodRequest = "REQUEST"
	StatusConfirm = "CONFIRMED"
)

// Invitation describes a single confirmed meeting.
type Invitation struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Organizer   string
	Attendees   []string
	Stamp       time.Time
}

// Encode renders inv as a METHOD:REQUEST calendar.
func Encode(inv Invitation) ([]byte, error) {
	if inv.UID == "" {
		return nil, fmt.Errorf("invitation uid is required")
	}
	if !inv.End.After(inv.Start) {
		return nil, fmt.Errorf("invitation end %s must be after start %s", inv.End, inv.Start)
	}

	stamp := inv.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, inv.UID)
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeStart, inv.Start.UTC())
	ev.Props.SetDateTime(ical.PropDateTimeEnd, inv.End.UTC())
	ev.Props.SetText(ical.PropSummary, inv.Summary)
	ev.Props.SetText(ical.PropStatus, StatusConfirm)
	if inv.Description != "" {
		ev.Props.SetText(ical.PropDescription, inv.Description)
	}
	if inv.Location != "" {
		ev.Props.SetText(ical.PropLocation, inv.Location)
	}
	if inv.Organizer != "" {
		p := ical.NewProp(ical.PropOrganizer)
		p.Value = "mailto:" + inv.Organizer
		ev.Props.Set(p)
	}
	for _, email := range inv.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.Value = "mailto:" + email
		p.Params.Set("ROLE", "REQ-PARTICIPANT")
		p.Params.Set("RSVP", "TRUE")
		ev.Props.Add(p)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropMethod, MethodRequest)
	cal.Children = append(cal.Children, ev.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode invitation: %w", err)
	}
	return buf.Bytes(), nil
}
