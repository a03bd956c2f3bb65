package availability

import (
	"iter"
	"time"
)

// GenerateCandidateSlots yields start, start+duration, ... for as long as a
// full duration still fits before end. The sequence can be ranged over any
// number of times.
func GenerateCandidateSlots(start, end time.Time, duration time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if duration <= 0 {
			return
		}
		for t := start; !t.Add(duration).After(end); t = t.Add(duration) {
			if !yield(t) {
				return
			}
		}
	}
}

// FilterAvailable drops candidates that start at or before now or that
// overlap any busy interval. Candidate order is preserved.
func FilterAvailable(candidates iter.Seq[time.Time], duration time.Duration, busy []BusyInterval, now time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for s := range candidates {
			if !s.After(now) {
				continue
			}
			if overlapsAny(s, s.Add(duration), busy) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// overlapsAny uses half-open semantics: touching intervals do not overlap.
func overlapsAny(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
