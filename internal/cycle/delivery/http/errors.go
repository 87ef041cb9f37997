package http

import (
	"errors"
	"net/http"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
	pkgErrors "synctracker/pkg/errors"
)

// mapError translates cycle domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, cycle.ErrAnchorNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user cycle data not found")
	case errors.Is(err, model.ErrInvalidCycleAnchor):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
