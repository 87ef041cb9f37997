package http

import (
	"github.com/gin-gonic/gin"

	"synctracker/internal/cycle"
	"synctracker/pkg/log"
)

// Handler is the public interface for the cycle HTTP delivery layer.
type Handler interface {
	Setup(c *gin.Context)
	Current(c *gin.Context)
	Insights(c *gin.Context)
	Recommendations(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc cycle.UseCase
}

// New creates a new HTTP handler for the cycle domain.
func New(l log.Logger, uc cycle.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
