package model

// LocationType is where a meeting takes place.
type LocationType string

const (
	LocationPhone      LocationType = "PHONE"
	LocationGoogleMeet LocationType = "GMEET"
)

// Valid reports whether l is a known location type.
func (l LocationType) Valid() bool {
	return l == LocationPhone || l == LocationGoogleMeet
}

// Label returns the human readable name shown to bookers.
func (l LocationType) Label() string {
	switch l {
	case LocationPhone:
		return "Phone call"
	case LocationGoogleMeet:
		return "Google Meet"
	default:
		return string(l)
	}
}
