package http

import (
	"fmt"
	"time"

	"bookme/internal/availability"
	"bookme/internal/schedule"
)

// --- Request DTOs ---

type dayReq struct {
	Off   bool   `json:"off"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type replaceReq struct {
	Timezone string            `json:"timezone" binding:"required"`
	Days     map[string]dayReq `json:"days"     binding:"required"`
}

func (r replaceReq) validate() error {
	for key := range r.Days {
		if _, ok := weekdayByAbbrev(key); !ok {
			return fmt.Errorf("unknown day %q", key)
		}
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if _, ok := r.Days[availability.WeekdayAbbrev(wd)]; !ok {
			return fmt.Errorf("day %q is required", availability.WeekdayAbbrev(wd))
		}
	}
	return nil
}

func (r replaceReq) toInput() schedule.ReplaceInput {
	in := schedule.ReplaceInput{Timezone: r.Timezone}
	for key, d := range r.Days {
		wd, _ := weekdayByAbbrev(key)
		in.Days[wd] = schedule.DayInput{Off: d.Off, Start: d.Start, End: d.End}
	}
	return in
}

func weekdayByAbbrev(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if availability.WeekdayAbbrev(wd) == s {
			return wd, true
		}
	}
	return 0, false
}

// --- Response DTOs ---

type dayResp struct {
	Off   bool   `json:"off"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type scheduleResp struct {
	Timezone string             `json:"timezone"`
	Days     map[string]dayResp `json:"days"`
}

func (h *handler) newScheduleResp(weekly availability.WeeklySchedule) scheduleResp {
	resp := scheduleResp{
		Timezone: weekly.Loc().String(),
		Days:     make(map[string]dayResp, len(weekly.Days)),
	}
	for i, d := range weekly.Days {
		day := dayResp{Off: d.Off}
		if d.Start != nil {
			day.Start = d.Start.String()
		}
		if d.End != nil {
			day.End = d.End.String()
		}
		resp.Days[availability.WeekdayAbbrev(time.Weekday(i))] = day
	}
	return resp
}
