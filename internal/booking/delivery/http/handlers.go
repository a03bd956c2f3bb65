package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookme/pkg/response"
)

const contentTypeCalendar = "text/calendar; charset=utf-8; method=REQUEST"

// Slots godoc
// @Summary     List open slots
// @Description Returns the bookable start times of an event type on one date, in the caller's timezone.
// @Tags        Booking
// @Produce     json
// @Param       slug path  string true  "Event type slug"
// @Param       date query string true  "Date (YYYY-MM-DD, today, tomorrow, next monday)"
// @Param       tz   query string false "IANA timezone (default: UTC)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Failure     503 {object} response.Resp "Scheduling temporarily unavailable"
// @Router      /api/v1/event-types/{slug}/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Slots(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Slots: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSlotsResp(output))
}

// Book godoc
// @Summary     Book a slot
// @Description Reserves one of the open slots and creates the calendar event.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       slug path string  true "Event type slug"
// @Param       body body bookReq true "Booking"
// @Success     201 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Slot no longer available"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/event-types/{slug}/bookings [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Book(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Book: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newBookingResp(output.Booking))
}

// Detail godoc
// @Summary     Get booking
// @Tags        Booking
// @Produce     json
// @Param       id path string true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/bookings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBookingResp(output.Booking))
}

// Invitation godoc
// @Summary     Download invitation
// @Description Returns the booking as an iCalendar REQUEST.
// @Tags        Booking
// @Produce     text/calendar
// @Param       id path string true "Booking ID"
// @Success     200 {string} string "iCalendar document"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Booking not confirmed"
// @Router      /api/v1/bookings/{id}/invite.ics [GET]
func (h *handler) Invitation(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.Invitation(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Invitation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invite.ics"`)
	c.Data(http.StatusOK, contentTypeCalendar, data)
}
