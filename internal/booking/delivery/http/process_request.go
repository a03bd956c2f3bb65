package http

import (
	"github.com/gin-gonic/gin"
)

// processSlotsReq binds the slug path param and the date/tz query.
func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	return req, nil
}

// processBookReq binds and validates the booking body + URI param.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Slug = c.Param("slug")
	return req, req.validate()
}
