package http

import (
	"github.com/gin-gonic/gin"

	"bookme/pkg/response"
)

// Get godoc
// @Summary     Get availability schedule
// @Description Returns the owner's weekly working hours.
// @Tags        Schedule
// @Produce     json
// @Security    AdminToken
// @Success     200 {object} scheduleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Schedule not configured"
// @Router      /api/v1/admin/schedule [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	weekly, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(weekly))
}

// Replace godoc
// @Summary     Replace availability schedule
// @Description Overwrites the weekly working hours. Every day sun..sat must be present.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Security    AdminToken
// @Param       body body replaceReq true "Weekly schedule"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/admin/schedule [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	weekly, err := h.uc.Replace(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Replace: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(weekly))
}
