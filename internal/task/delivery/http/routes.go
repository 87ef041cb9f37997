package http

import (
	"synctracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/schedule", mw.RateLimit(), h.Schedule)
		tasks.POST("/schedule/batch", mw.RateLimit(), h.BatchSchedule)
		tasks.GET("/:user_id", mw.RateLimit(), h.List)
		tasks.GET("/:user_id/upcoming", mw.RateLimit(), h.Upcoming)
		tasks.POST("/:user_id/:task_id/complete", mw.RateLimit(), h.Complete)
	}
}
