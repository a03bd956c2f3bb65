package http

import "github.com/gin-gonic/gin"

func (h *handler) processReplaceReq(c *gin.Context) (replaceReq, error) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
