package http

import (
	"github.com/gin-gonic/gin"

	"synctracker/internal/task"
	"synctracker/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	BatchSchedule(c *gin.Context)
	List(c *gin.Context)
	Upcoming(c *gin.Context)
	Complete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
