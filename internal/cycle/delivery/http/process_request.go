package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"synctracker/internal/model"
)

// processSetupReq binds and validates the cycle setup request body.
func (h *handler) processSetupReq(c *gin.Context) (setupReq, error) {
	var req setupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScope extracts the user scope from the URI.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	userID := c.Param("user_id")
	if userID == "" {
		return model.Scope{}, errors.New("user_id is required")
	}
	return model.Scope{UserID: userID}, nil
}
