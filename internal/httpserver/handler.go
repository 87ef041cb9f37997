package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "synctracker/internal/calendar/delivery/http"
	cycleHTTP "synctracker/internal/cycle/delivery/http"
	taskHTTP "synctracker/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	cycleHTTP.RegisterRoutes(api, srv.cycleHandler, srv.mw)
	srv.l.Infof(ctx, "Cycle domain registered under /api/v1/cycle")

	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	srv.l.Infof(ctx, "Task domain registered under /api/v1/tasks")

	calendarHTTP.RegisterRoutes(api, srv.calendarHandler, srv.mw)
	srv.l.Infof(ctx, "Calendar domain registered under /api/v1/calendar")
}

// Router exposes the underlying engine for tests.
func (srv *HTTPServer) Router() *gin.Engine { return srv.gin }
