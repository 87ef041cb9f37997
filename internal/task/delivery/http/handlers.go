package http

import (
	"github.com/gin-gonic/gin"

	"synctracker/internal/model"
	"synctracker/pkg/response"
)

// Schedule godoc
// @Summary     Schedule a task
// @Description Places the task in the best available slot for the user's current cycle phase.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Task to schedule"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "No feasible slot"
// @Router      /api/v1/tasks/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, model.Scope{UserID: req.UserID}, req.Task.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// BatchSchedule godoc
// @Summary     Rank dates for a batch of tasks
// @Description Returns suggested dates per task without creating calendar events.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body batchScheduleReq true "Tasks to rank"
// @Success     200 {object} batchScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/schedule/batch [POST]
func (h *handler) BatchSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BatchSchedule(ctx, model.Scope{UserID: req.UserID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBatchScheduleResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Lists the user's stored tasks, newest first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       category query string false "Filter by category"
// @Param       include_completed query bool false "Include completed tasks"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{user_id} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Upcoming godoc
// @Summary     Upcoming scheduled events
// @Description Lists calendar events previously created by the scheduler.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       days query int false "Days ahead (default 7)"
// @Success     200 {object} upcomingResp
// @Router      /api/v1/tasks/{user_id}/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Upcoming(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpcomingResp(output))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task as done.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Param       task_id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{user_id}/{task_id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, taskID, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Complete(ctx, sc, taskID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(output))
}
