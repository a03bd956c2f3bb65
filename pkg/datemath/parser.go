package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the absolute date format accepted by Parse.
const DateLayout = "2006-01-02"

// ErrUnrecognized is returned for input that is neither an absolute date nor
// a known relative expression.
var ErrUnrecognized = errors.New("unrecognized date")

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves caller-supplied date strings to midnight in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ForLocation returns a parser bound to an already-resolved location.
func ForLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an absolute (YYYY-MM-DD) or relative date string to midnight
// of that day in the parser's timezone. baseTime anchors relative forms.
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if t, err := time.ParseInLocation(DateLayout, value, p.location); err == nil {
		return t, nil
	}

	switch value {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime).AddDate(0, 0, 1), nil
	case "yesterday":
		return p.StartOfDay(baseTime).AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(value, "in ") {
		return p.parseInDuration(value, baseTime)
	}

	if strings.HasPrefix(value, "next ") {
		return p.parseNextWeekday(value, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(value string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, value)
	}

	amount, _ := strconv.Atoi(matches[1])
	start := p.StartOfDay(baseTime)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return start.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return start.AddDate(0, 0, amount*7), nil
	default:
		return start.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(value string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(value, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	start := p.StartOfDay(baseTime)
	daysUntil := int(targetWeekday - start.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return start.AddDate(0, 0, daysUntil), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DaysBetween counts calendar days from a to b in the parser's timezone.
// It is negative when b is before a.
func (p *Parser) DaysBetween(a, b time.Time) int {
	ya, ma, da := a.In(p.location).Date()
	yb, mb, db := b.In(p.location).Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
