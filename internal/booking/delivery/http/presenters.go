package http

import (
	"errors"
	"strings"
	"time"

	"bookme/internal/booking"
)

var errMissingName = errors.New("name is required")

// --- Request DTOs ---

type slotsReq struct {
	Slug     string `form:"-"` // populated from URI param
	Date     string `form:"date" binding:"required"`
	Timezone string `form:"tz"`
}

func (r slotsReq) toInput() booking.SlotsInput {
	return booking.SlotsInput{
		Slug:     r.Slug,
		Date:     r.Date,
		Timezone: r.Timezone,
	}
}

// ---

type bookReq struct {
	Slug        string    `json:"-"` // populated from URI param
	Start       time.Time `json:"start"       binding:"required"`
	Timezone    string    `json:"timezone"`
	Name        string    `json:"name"        binding:"required,max=255"`
	Email       string    `json:"email"       binding:"required,email,max=255"`
	Phone       string    `json:"phone"       binding:"max=32"`
	Description string    `json:"description" binding:"max=2000"`
}

func (r bookReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errMissingName
	}
	return nil
}

func (r bookReq) toInput() booking.BookInput {
	return booking.BookInput{
		Slug:        r.Slug,
		Start:       r.Start,
		Timezone:    r.Timezone,
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		Description: r.Description,
	}
}

// --- Response DTOs ---

type slotsResp struct {
	EventType string      `json:"event_type"`
	Date      string      `json:"date"`
	Timezone  string      `json:"timezone"`
	Duration  int         `json:"duration_minutes"`
	Slots     []time.Time `json:"slots"`
}

func (h *handler) newSlotsResp(o booking.SlotsOutput) slotsResp {
	return slotsResp{
		EventType: o.EventType.Slug,
		Date:      o.Date.String(),
		Timezone:  o.Timezone,
		Duration:  o.EventType.DurationMinutes,
		Slots:     o.Slots,
	}
}

type bookingResp struct {
	ID           string    `json:"id"`
	EventType    string    `json:"event_type"`
	LocationType string    `json:"location_type"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Description  string    `json:"description,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Timezone     string    `json:"timezone"`
	Status       string    `json:"status"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	MeetLink     string    `json:"meet_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// newBookingResp renders times in the booker's timezone.
func (h *handler) newBookingResp(b booking.Booking) bookingResp {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return bookingResp{
		ID:           b.ID,
		EventType:    b.EventTypeName,
		LocationType: string(b.LocationType),
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Description:  b.Description,
		Start:        b.Start.In(loc),
		End:          b.End.In(loc),
		Timezone:     b.Timezone,
		Status:       string(b.Status),
		CalendarLink: b.CalendarLink,
		MeetLink:     b.MeetLink,
		CreatedAt:    b.CreatedAt,
	}
}
