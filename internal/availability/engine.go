package availability

import (
	"fmt"
	"slices"
	"time"
)

// ComputeAvailability returns every free slot start of req.Duration on
// req.Date in req.Location.
//
// It is pure: now is read once by the caller and busy must already hold every
// interval overlapping the requested day. Safe for concurrent use.
func ComputeAvailability(schedule WeeklySchedule, busy []BusyInterval, req SlotRequest, now time.Time) (Result, error) {
	if !IsSupportedDuration(req.Duration) {
		return Result{}, fmt.Errorf("%w: unsupported duration %s", ErrInvalidRequest, req.Duration)
	}

	windows, err := ResolveDayWindows(schedule, req.Date, req.Location)
	if err != nil {
		return Result{}, err
	}

	slots := []time.Time{}
	for _, w := range windows {
		candidates := GenerateCandidateSlots(w.Start, w.End, req.Duration)
		slots = slices.AppendSeq(slots, FilterAvailable(candidates, req.Duration, busy, now))
	}
	return Result{Slots: slots}, nil
}

// Contains reports whether start is one of the slots in r.
func (r Result) Contains(start time.Time) bool {
	return slices.ContainsFunc(r.Slots, start.Equal)
}
