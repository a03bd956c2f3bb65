package usecase

import (
	"context"
	"time"

	"bookme/internal/booking"
	"bookme/internal/booking/repository"
	"bookme/internal/busy"
	"bookme/internal/eventtype"
	"bookme/internal/schedule"
	"bookme/pkg/gcalendar"
	"bookme/pkg/kafka"
	"bookme/pkg/log"
)

// Calendar creates the owner's calendar event for a confirmed booking.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	eventTypes eventtype.UseCase
	schedules  schedule.UseCase
	busy       busy.Source
	calendar   Calendar        // optional
	publisher  kafka.Publisher // optional
	owner      booking.Owner
	now        func() time.Time
}

// New creates a new booking UseCase. calendar and publisher may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	eventTypes eventtype.UseCase,
	schedules schedule.UseCase,
	busySource busy.Source,
	calendar Calendar,
	publisher kafka.Publisher,
	owner booking.Owner,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		eventTypes: eventTypes,
		schedules:  schedules,
		busy:       busySource,
		calendar:   calendar,
		publisher:  publisher,
		owner:      owner,
		now:        time.Now,
	}
}
