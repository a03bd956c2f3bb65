package http

import (
	"errors"
	"net/http"

	"bookme/internal/availability"
	"bookme/internal/booking"
	"bookme/internal/eventtype"
	pkgErrors "bookme/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidRequest),
		errors.Is(err, booking.ErrDateOutOfRange),
		errors.Is(err, booking.ErrPhoneRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, eventtype.ErrEventTypeNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrBookingNotConfirmed):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrScheduleUnavailable):
		// Internal configuration detail stays in the logs.
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, booking.ErrScheduleUnavailable.Error())
	case errors.Is(err, booking.ErrCalendarUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, booking.ErrCalendarUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
