package http

import (
	"github.com/gin-gonic/gin"

	"bookme/internal/middleware"
)

// RegisterRoutes maps the public read-only event type endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.GET("/:slug", h.Detail)
}

// RegisterAdminRoutes maps the event type management endpoints.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.AdminAuth(), h.Create)
	rg.PUT("/:id", mw.AdminAuth(), h.Update)
	rg.DELETE("/:id", mw.AdminAuth(), h.Delete)
}
