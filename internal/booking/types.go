package booking

import (
	"time"

	"bookme/internal/availability"
	"bookme/internal/eventtype"
	"bookme/internal/model"
)

// EventConfirmed is the message type published once a booking is on the calendar.
const EventConfirmed = "booking.confirmed"

// Owner identifies the person whose calendar is being booked.
type Owner struct {
	Name       string
	Email      string
	CalendarID string
}

// Booking is a reserved meeting. Event type details are copied so the booking
// survives later edits or deletion of its event type.
type Booking struct {
	ID              string
	EventTypeID     string
	EventTypeName   string
	LocationType    model.LocationType
	Name            string
	Email           string
	Phone           string
	Description     string
	Start           time.Time
	End             time.Time
	Timezone        string
	Status          model.BookingStatus
	CalendarEventID string
	CalendarLink    string
	MeetLink        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// --- UseCase Inputs ---

// SlotsInput asks for the open slots of one date. Date is "YYYY-MM-DD" or a
// relative form such as "tomorrow", read in Timezone.
type SlotsInput struct {
	Slug     string
	Date     string
	Timezone string
}

type BookInput struct {
	Slug        string
	Start       time.Time
	Timezone    string
	Name        string
	Email       string
	Phone       string
	Description string
}

// --- UseCase Outputs ---

type SlotsOutput struct {
	EventType eventtype.EventType
	Date      availability.Date
	Timezone  string
	Slots     []time.Time
}

type BookOutput struct {
	Booking Booking
}

type DetailOutput struct {
	Booking Booking
}
