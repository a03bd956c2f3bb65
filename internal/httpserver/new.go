package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"bookme/internal/booking"
	bookingUC "bookme/internal/booking/usecase"
	"bookme/internal/busy"
	"bookme/internal/middleware"
	"bookme/pkg/kafka"
	"bookme/pkg/log"
	"bookme/pkg/postgres"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB postgres.DB
	pinger     Pinger

	// Booking collaborators
	calendar     bookingUC.Calendar
	busySources  []busy.Source
	closedBlocks bool
	publisher    kafka.Publisher
	owner        booking.Owner

	// Middleware
	middlewareCfg middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Storage
	PostgresDB postgres.DB
	Pinger     Pinger

	// Calendar creates events for confirmed bookings. Optional.
	Calendar bookingUC.Calendar
	// BusySources are external calendars consulted alongside local bookings.
	BusySources []busy.Source
	// ClosedBlocks adds the complement of working hours as busy time.
	ClosedBlocks bool
	Publisher    kafka.Publisher
	Owner        booking.Owner

	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		pinger:          cfg.Pinger,
		calendar:        cfg.Calendar,
		busySources:     cfg.BusySources,
		closedBlocks:    cfg.ClosedBlocks,
		publisher:       cfg.Publisher,
		owner:           cfg.Owner,
		middlewareCfg:   cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.middlewareCfg.AdminToken == "" {
		return errors.New("admin token is required")
	}
	return nil
}
