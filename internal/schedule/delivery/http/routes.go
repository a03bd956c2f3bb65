package http

import (
	"github.com/gin-gonic/gin"

	"bookme/internal/middleware"
)

// RegisterAdminRoutes maps the schedule endpoints under an admin group.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/schedule", mw.AdminAuth(), h.Get)
	rg.PUT("/schedule", mw.AdminAuth(), h.Replace)
}
