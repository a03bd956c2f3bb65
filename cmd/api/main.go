package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bookme/config"
	_ "bookme/docs" // Swagger docs
	"bookme/internal/booking"
	bookingUC "bookme/internal/booking/usecase"
	"bookme/internal/busy"
	"bookme/internal/httpserver"
	"bookme/internal/middleware"
	"bookme/pkg/caldav"
	"bookme/pkg/gcalendar"
	"bookme/pkg/kafka"
	"bookme/pkg/log"
	"bookme/pkg/postgres"
	"bookme/pkg/redis"
)

const rateLimitPrefix = "bookme:ratelimit"

// @title       bookme API
// @description Meeting booking: weekly availability, open slots and calendar-backed reservations.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey AdminToken
// @in   header
// @name Authorization
func main() {
	// 0. Local overrides; a missing .env is fine.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting bookme...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := postgres.Open(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
		MaxConnIdleTime: cfg.Postgres.MaxConnIdleTime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer pool.Close()

	// 4. Rate limiter: Redis when configured, in-process otherwise
	limiter := middleware.NewMemoryLimiter(cfg.RateLimit.PerMin)
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	switch {
	case err != nil:
		logger.Warnf(ctx, "Redis not available, using in-process rate limiting: %v", err)
	case rdb != nil:
		defer rdb.Close()
		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.PerMin, cfg.RateLimit.Window, rateLimitPrefix)
		logger.Infof(ctx, "Rate limiting via Redis at %s", cfg.Redis.Addr)
	}

	// 5. Google Calendar (optional): event creation + busy source
	var (
		calendar    bookingUC.Calendar
		busySources []busy.Source
	)
	if cfg.GoogleCalendar.Enabled() {
		gcal, gErr := gcalendar.NewClientFromCredentialsFile(ctx, logger, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "Run `calendartoken generatetoken` to create the token file")
		} else {
			calendar = gcal
			busySources = append(busySources, busy.NewGoogle(gcal, cfg.GoogleCalendar.CalendarID))
			logger.Infof(ctx, "Google Calendar initialized for %s", cfg.GoogleCalendar.CalendarID)
		}
	}

	// 6. CalDAV (optional): extra busy source
	if cfg.CalDAV.Enabled() {
		dav, dErr := caldav.NewClient(ctx, caldav.Config{
			Endpoint:     cfg.CalDAV.Endpoint,
			Username:     cfg.CalDAV.Username,
			Password:     cfg.CalDAV.Password,
			CalendarPath: cfg.CalDAV.CalendarPath,
			CalendarName: cfg.CalDAV.CalendarName,
		})
		if dErr != nil {
			logger.Warnf(ctx, "CalDAV not available (optional): %v", dErr)
		} else {
			busySources = append(busySources, busy.NewCalDAV(dav))
			logger.Infof(ctx, "CalDAV calendar %s initialized", dav.CalendarPath())
		}
	}

	// 7. Kafka (optional)
	publisher := kafka.NewPublisher(kafka.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
	if publisher != nil {
		defer publisher.Close()
		logger.Infof(ctx, "Publishing booking events to %s", cfg.Kafka.Topic)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      pool,
		Pinger:          pool,
		Calendar:        calendar,
		BusySources:     busySources,
		ClosedBlocks:    cfg.Owner.ClosedBlocks,
		Publisher:       publisher,
		Owner: booking.Owner{
			Name:       cfg.Owner.Name,
			Email:      cfg.Owner.Email,
			CalendarID: cfg.GoogleCalendar.CalendarID,
		},
		Middleware: middleware.Config{
			AdminToken: cfg.Admin.Token,
			Limiter:    limiter,
			FailOpen:   cfg.RateLimit.FailOpen,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	start := time.Now()
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Infof(ctx, "Server stopped gracefully after %s", time.Since(start).Round(time.Second))
}
