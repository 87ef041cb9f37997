package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"synctracker/pkg/response"
)

// Availability godoc
// @Summary     Calendar availability
// @Description Returns busy intervals and free slots per day in the range, annotated with the cycle phase.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       from query string true "Range start (YYYY-MM-DD)"
// @Param       to query string true "Range end (YYYY-MM-DD)"
// @Param       duration query int false "Slot length in minutes (default 60)"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/{user_id}/availability [GET]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Availability(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Availability: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// ExportICal godoc
// @Summary     Export tasks as iCalendar
// @Description Renders the user's open tasks as a VCALENDAR feed.
// @Tags        Calendar
// @Produce     plain
// @Param       user_id path string true "User ID"
// @Success     200 {string} string "iCalendar document"
// @Router      /api/v1/calendar/{user_id}/export.ics [GET]
func (h *handler) ExportICal(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICal(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="synctracker.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.ICal))
}
