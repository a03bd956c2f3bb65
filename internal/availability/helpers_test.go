package availability_test

import (
	"time"

	"bookme/internal/availability"
)

var (
	// 2024-05-06 is a Monday.
	monday  = availability.Date{Year: 2024, Month: time.May, Day: 6}
	tuesday = availability.Date{Year: 2024, Month: time.May, Day: 7}
	utc14   = time.FixedZone("UTC+14", 14*60*60)
)

func clock(s string) *availability.Clock {
	c := availability.MustClock(s)
	return &c
}

func workday(start, end string) availability.DaySchedule {
	return availability.DaySchedule{Start: clock(start), End: clock(end)}
}

func offDay() availability.DaySchedule {
	return availability.DaySchedule{Off: true}
}

// mondayOnly is open 09:00-17:00 UTC on Mondays and closed otherwise.
func mondayOnly() availability.WeeklySchedule {
	s := availability.WeeklySchedule{Location: time.UTC}
	for i := range s.Days {
		s.Days[i] = offDay()
	}
	s.Days[time.Monday] = workday("09:00", "17:00")
	return s
}

func at(d availability.Date, hh, mm int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hh, mm, 0, 0, loc)
}
