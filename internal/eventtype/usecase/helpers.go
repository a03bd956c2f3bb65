package usecase

import (
	"strings"
	"time"
	"unicode"

	"bookme/internal/availability"
	"bookme/internal/eventtype"
	"bookme/internal/model"
)

const maxHorizonDays = 365

// coalesce returns newVal when set, otherwise existing.
func coalesce[T comparable](newVal, existing T) T {
	var zero T
	if newVal != zero {
		return newVal
	}
	return existing
}

// slugify lowercases name and joins its alphanumeric runs with '-'.
func slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func validate(durationMinutes, horizonDays int, location model.LocationType) error {
	if !availability.IsSupportedDuration(time.Duration(durationMinutes) * time.Minute) {
		return eventtype.ErrInvalidDuration
	}
	if horizonDays < 1 || horizonDays > maxHorizonDays {
		return eventtype.ErrInvalidHorizon
	}
	if !location.Valid() {
		return eventtype.ErrInvalidLocation
	}
	return nil
}
