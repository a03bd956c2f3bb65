package http

import (
	"github.com/gin-gonic/gin"

	"bookme/internal/middleware"
)

// RegisterEventTypeRoutes maps the slot and booking endpoints nested under
// an event type. Booking creation is rate limited.
func RegisterEventTypeRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:slug/slots", h.Slots)
	rg.POST("/:slug/bookings", mw.RateLimit(), h.Book)
}

// RegisterRoutes maps the booking lookup endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/:id", h.Detail)
	rg.GET("/:id/invite.ics", h.Invitation)
}
