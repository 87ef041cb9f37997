package http

import (
	"github.com/gin-gonic/gin"

	"synctracker/internal/model"
	"synctracker/pkg/response"
)

// Setup godoc
// @Summary     Set up cycle data
// @Description Creates or replaces the user's cycle anchor and returns the current phase.
// @Tags        Cycle
// @Accept      json
// @Produce     json
// @Param       body body setupReq true "Cycle data"
// @Success     200 {object} setupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/cycle/setup [POST]
func (h *handler) Setup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Setup(ctx, model.Scope{UserID: req.UserID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Setup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSetupResp(output))
}

// Current godoc
// @Summary     Current phase
// @Description Returns the user's current cycle phase and its profile.
// @Tags        Cycle
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} phaseResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/cycle/{user_id}/current [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CurrentPhase(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.CurrentPhase: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPhaseResp(output))
}

// Insights godoc
// @Summary     Daily insights
// @Description Returns the daily phase summary and the upcoming phase change.
// @Tags        Cycle
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} insightsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/cycle/{user_id}/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Insights(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Recommendations godoc
// @Summary     Task recommendations
// @Description Lists the task categories best suited to the current phase.
// @Tags        Cycle
// @Accept      json
// @Produce     json
// @Param       user_id path string true "User ID"
// @Success     200 {object} recommendationsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/cycle/{user_id}/recommendations [GET]
func (h *handler) Recommendations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Recommendations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommendations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecommendationsResp(output))
}
