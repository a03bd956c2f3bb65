package http

import (
	"github.com/gin-gonic/gin"

	"bookme/pkg/response"
)

// Create godoc
// @Summary     Create an event type
// @Description Creates a bookable event type. The slug is derived from the name.
// @Tags        EventType
// @Accept      json
// @Produce     json
// @Security    AdminToken
// @Param       body body createReq true "Event type"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/admin/event-types [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newItemResp(output.EventType))
}

// List godoc
// @Summary     List event types
// @Description Returns the bookable event types ordered by name.
// @Tags        EventType
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Router      /api/v1/event-types [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event type
// @Description Returns a single event type by its slug.
// @Tags        EventType
// @Produce     json
// @Param       slug path string true "Event type slug"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/event-types/{slug} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DetailBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.l.Warnf(ctx, "uc.DetailBySlug: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output.EventType))
}

// Update godoc
// @Summary     Update an event type
// @Description Partially updates an event type. A new name regenerates the slug.
// @Tags        EventType
// @Accept      json
// @Produce     json
// @Security    AdminToken
// @Param       id   path string    true "Event type ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/event-types/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output.EventType))
}

// Delete godoc
// @Summary     Delete an event type
// @Tags        EventType
// @Produce     json
// @Security    AdminToken
// @Param       id path string true "Event type ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/admin/event-types/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
