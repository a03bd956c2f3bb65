package model

// BookingStatus tracks a booking through calendar confirmation. A pending
// booking has no calendar event yet; a failed one releases its slot.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingFailed    BookingStatus = "failed"
)
