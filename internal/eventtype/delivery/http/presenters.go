package http

import (
	"time"

	"bookme/internal/eventtype"
	"bookme/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name            string `json:"name"             binding:"required,min=1,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,oneof=15 30 45 60"`
	HorizonDays     int    `json:"horizon_days"     binding:"omitempty,min=1,max=365"`
	LocationType    string `json:"location_type"    binding:"required,oneof=PHONE GMEET"`
	Description     string `json:"description"      binding:"max=2000"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() eventtype.CreateInput {
	return eventtype.CreateInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		HorizonDays:     r.HorizonDays,
		LocationType:    model.LocationType(r.LocationType),
		Description:     r.Description,
	}
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() eventtype.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return eventtype.ListInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type updateReq struct {
	ID              string `json:"-"` // populated from URI param
	Name            string `json:"name"             binding:"omitempty,min=1,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,oneof=15 30 45 60"`
	HorizonDays     int    `json:"horizon_days"     binding:"omitempty,min=1,max=365"`
	LocationType    string `json:"location_type"    binding:"omitempty,oneof=PHONE GMEET"`
	Description     string `json:"description"      binding:"max=2000"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() eventtype.UpdateInput {
	return eventtype.UpdateInput{
		ID:              r.ID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		HorizonDays:     r.HorizonDays,
		LocationType:    model.LocationType(r.LocationType),
		Description:     r.Description,
	}
}

// --- Response DTOs ---

type eventTypeResp struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	DurationMinutes int       `json:"duration_minutes"`
	HorizonDays     int       `json:"horizon_days"`
	LocationType    string    `json:"location_type"`
	LocationLabel   string    `json:"location_label"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newEventTypeResp(et eventtype.EventType) eventTypeResp {
	return eventTypeResp{
		ID:              et.ID,
		Name:            et.Name,
		Slug:            et.Slug,
		DurationMinutes: et.DurationMinutes,
		HorizonDays:     et.HorizonDays,
		LocationType:    string(et.LocationType),
		LocationLabel:   et.LocationType.Label(),
		Description:     et.Description,
		CreatedAt:       et.CreatedAt,
		UpdatedAt:       et.UpdatedAt,
	}
}

type itemResp struct {
	EventType eventTypeResp `json:"event_type"`
}

func (h *handler) newItemResp(et eventtype.EventType) itemResp {
	return itemResp{EventType: newEventTypeResp(et)}
}

type listResp struct {
	EventTypes []eventTypeResp `json:"event_types"`
	Total      int             `json:"total"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

func (h *handler) newListResp(out eventtype.ListOutput) listResp {
	items := make([]eventTypeResp, len(out.EventTypes))
	for i, et := range out.EventTypes {
		items[i] = newEventTypeResp(et)
	}
	return listResp{
		EventTypes: items,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}
