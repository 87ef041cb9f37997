package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calendarHTTP "synctracker/internal/calendar/delivery/http"
	cycleHTTP "synctracker/internal/cycle/delivery/http"
	"synctracker/internal/middleware"
	taskHTTP "synctracker/internal/task/delivery/http"
	"synctracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	cycleHandler    cycleHTTP.Handler
	taskHandler     taskHTTP.Handler
	calendarHandler calendarHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Domains
	CycleHandler    cycleHTTP.Handler
	TaskHandler     taskHTTP.Handler
	CalendarHandler calendarHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		cycleHandler:    cfg.CycleHandler,
		taskHandler:     cfg.TaskHandler,
		calendarHandler: cfg.CalendarHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cycleHandler == nil {
		return errors.New("cycle handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.calendarHandler == nil {
		return errors.New("calendar handler is required")
	}
	return nil
}
