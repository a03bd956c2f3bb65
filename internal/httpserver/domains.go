package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "bookme/internal/booking/delivery/http"
	bookingRepo "bookme/internal/booking/repository/postgre"
	bookingUC "bookme/internal/booking/usecase"
	"bookme/internal/busy"
	"bookme/internal/eventtype"
	eventTypeHTTP "bookme/internal/eventtype/delivery/http"
	eventTypeRepo "bookme/internal/eventtype/repository/postgre"
	eventTypeUC "bookme/internal/eventtype/usecase"
	"bookme/internal/middleware"
	"bookme/internal/schedule"
	scheduleHTTP "bookme/internal/schedule/delivery/http"
	scheduleRepo "bookme/internal/schedule/repository/postgre"
	scheduleUC "bookme/internal/schedule/usecase"
)

// setupScheduleDomain registers /api/v1/admin/schedule.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, admin *gin.RouterGroup, mw middleware.Middleware) schedule.UseCase {
	repo := scheduleRepo.New(srv.postgresDB, srv.l)
	uc := scheduleUC.New(repo, srv.l)
	h := scheduleHTTP.New(srv.l, uc)

	scheduleHTTP.RegisterAdminRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return uc
}

// setupEventTypeDomain registers /api/v1/event-types and its admin counterpart.
func (srv HTTPServer) setupEventTypeDomain(ctx context.Context, api, admin *gin.RouterGroup, mw middleware.Middleware) eventtype.UseCase {
	repo := eventTypeRepo.New(srv.postgresDB, srv.l)
	uc := eventTypeUC.New(repo, srv.l)
	h := eventTypeHTTP.New(srv.l, uc)

	eventTypeHTTP.RegisterRoutes(api.Group("/event-types"), h)
	eventTypeHTTP.RegisterAdminRoutes(admin.Group("/event-types"), h, mw)

	srv.l.Infof(ctx, "Event type domain registered")
	return uc
}

// setupBookingDomain registers slot lookup, booking and invitation routes.
// Local bookings are always a busy source, so double booking is prevented
// even without an external calendar.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, eventTypes eventtype.UseCase, schedules schedule.UseCase) {
	repo := bookingRepo.New(srv.postgresDB, srv.l)

	sources := append([]busy.Source{repo}, srv.busySources...)
	if srv.closedBlocks {
		sources = append(sources, busy.NewClosedBlocks(schedules))
		srv.l.Infof(ctx, "Closed blocks enabled")
	}

	uc := bookingUC.New(srv.l, repo, eventTypes, schedules, busy.Merge(sources...), srv.calendar, srv.publisher, srv.owner)
	h := bookingHTTP.New(srv.l, uc)

	bookingHTTP.RegisterEventTypeRoutes(api.Group("/event-types"), h, mw)
	bookingHTTP.RegisterRoutes(api.Group("/bookings"), h)

	srv.l.Infof(ctx, "Booking domain registered with %d busy source(s)", len(sources))
}
