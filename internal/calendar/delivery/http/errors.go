package http

import (
	"errors"
	"net/http"

	"synctracker/internal/calendar"
	pkgErrors "synctracker/pkg/errors"
)

// mapError translates calendar domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
