package http

import (
	"errors"
	"net/http"

	"bookme/internal/schedule"
	pkgErrors "bookme/pkg/errors"
)

// mapError translates schedule errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrInvalidSchedule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
