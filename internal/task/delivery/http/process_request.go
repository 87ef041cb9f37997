package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"synctracker/internal/model"
	"synctracker/internal/task"
)

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processBatchScheduleReq(c *gin.Context) (batchScheduleReq, error) {
	var req batchScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (model.Scope, task.ListInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, task.ListInput{}, err
	}

	input := task.ListInput{
		Category:         model.TaskCategory(c.Query("category")),
		IncludeCompleted: c.Query("include_completed") == "true",
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return model.Scope{}, task.ListInput{}, errors.New("limit must be an integer")
		}
		input.Limit = limit
	}
	return sc, input, nil
}

func (h *handler) processUpcomingReq(c *gin.Context) (model.Scope, task.UpcomingInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, task.UpcomingInput{}, err
	}

	input := task.UpcomingInput{}
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return model.Scope{}, task.UpcomingInput{}, errors.New("days must be an integer")
		}
		input.Days = days
	}
	return sc, input, nil
}

func (h *handler) processCompleteReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Scope{}, "", err
	}
	taskID := c.Param("task_id")
	if taskID == "" {
		return model.Scope{}, "", errors.New("task_id is required")
	}
	return sc, taskID, nil
}

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	userID := c.Param("user_id")
	if userID == "" {
		return model.Scope{}, errors.New("user_id is required")
	}
	return model.Scope{UserID: userID}, nil
}
