package http

import (
	"errors"
	"net/http"

	"bookme/internal/eventtype"
	pkgErrors "bookme/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, eventtype.ErrEventTypeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, eventtype.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, eventtype.ErrInvalidDuration),
		errors.Is(err, eventtype.ErrInvalidHorizon),
		errors.Is(err, eventtype.ErrInvalidLocation),
		errors.Is(err, eventtype.ErrInvalidName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
