package http

import (
	"synctracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cal := rg.Group("/calendar")
	{
		cal.GET("/:user_id/availability", mw.RateLimit(), h.Availability)
		cal.GET("/:user_id/export.ics", mw.RateLimit(), h.ExportICal)
	}
}
