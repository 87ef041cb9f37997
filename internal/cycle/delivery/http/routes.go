package http

import (
	"synctracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	cycles := rg.Group("/cycle")
	{
		cycles.POST("/setup", mw.RateLimit(), h.Setup)
		cycles.GET("/:user_id/current", mw.RateLimit(), h.Current)
		cycles.GET("/:user_id/insights", mw.RateLimit(), h.Insights)
		cycles.GET("/:user_id/recommendations", mw.RateLimit(), h.Recommendations)
	}
}
