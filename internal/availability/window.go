package availability

import "time"

// ResolveDayWindows returns the working-hours windows that fall on date as
// seen from callerLoc, or nil when nothing is bookable that day.
//
// Schedule times are wall-clock times in the owner's reference timezone, so a
// single caller day can intersect up to three owner days. Each intersecting
// owner day contributes its window clipped to the caller's [midnight,
// next midnight). The clipped windows of distinct owner days never overlap,
// so the result is ascending and may hold two disjoint segments.
func ResolveDayWindows(schedule WeeklySchedule, date Date, callerLoc *time.Location) ([]Window, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	if callerLoc == nil {
		callerLoc = time.UTC
	}

	dayStart := date.Midnight(callerLoc)
	dayEnd := date.AddDays(1).Midnight(callerLoc)

	owner := schedule.Loc()
	first := DateOf(dayStart.In(owner))
	last := DateOf(dayEnd.In(owner))

	var windows []Window
	for od := first; !od.After(last); od = od.AddDays(1) {
		day := schedule.Day(od.Weekday())
		if day.Off {
			continue
		}

		start := day.Start.On(od, owner)
		end := day.End.On(od, owner)
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !start.Before(end) {
			continue
		}

		windows = append(windows, Window{Start: start.In(callerLoc), End: end.In(callerLoc)})
	}
	return windows, nil
}
