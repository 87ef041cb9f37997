package http

import (
	"errors"
	"net/http"

	"synctracker/internal/cycle"
	"synctracker/internal/scheduler"
	"synctracker/internal/task"
	pkgErrors "synctracker/pkg/errors"
)

// mapError translates task domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, cycle.ErrAnchorNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user cycle data not found")
	case errors.Is(err, task.ErrInvalidTask), errors.Is(err, task.ErrNoTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduler.ErrNoFeasibleSlot):
		return pkgErrors.NewHTTPError(http.StatusConflict, "no feasible slot in the scheduling horizon")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
