package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"synctracker/internal/calendar"
	"synctracker/internal/model"
)

const dateLayout = "2006-01-02"

func (h *handler) processAvailabilityReq(c *gin.Context) (model.Scope, calendar.AvailabilityInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, calendar.AvailabilityInput{}, err
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		return model.Scope{}, calendar.AvailabilityInput{}, errors.New("from must be YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		return model.Scope{}, calendar.AvailabilityInput{}, errors.New("to must be YYYY-MM-DD")
	}

	input := calendar.AvailabilityInput{From: from, To: to}
	if raw := c.Query("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			return model.Scope{}, calendar.AvailabilityInput{}, errors.New("duration must be an integer")
		}
		input.DurationMinutes = duration
	}
	return sc, input, nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	userID := c.Param("user_id")
	if userID == "" {
		return model.Scope{}, errors.New("user_id is required")
	}
	return model.Scope{UserID: userID}, nil
}
