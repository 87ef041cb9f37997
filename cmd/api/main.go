package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"synctracker/config"
	_ "synctracker/docs" // Swagger docs
	"synctracker/internal/calendar"
	"synctracker/internal/digest"
	"synctracker/internal/httpserver"
	"synctracker/internal/middleware"
	"synctracker/internal/scheduler"
	"synctracker/pkg/gcalendar"
	"synctracker/pkg/log"
	"synctracker/pkg/sqlitedb"

	calendarHTTP "synctracker/internal/calendar/delivery/http"
	calendarUC "synctracker/internal/calendar/usecase"
	cycleHTTP "synctracker/internal/cycle/delivery/http"
	cycleSQLite "synctracker/internal/cycle/repository/sqlite"
	cycleUC "synctracker/internal/cycle/usecase"
	taskHTTP "synctracker/internal/task/delivery/http"
	taskSQLite "synctracker/internal/task/repository/sqlite"
	taskUC "synctracker/internal/task/usecase"
)

// @title       SyncTracker API
// @description Cycle-aware task scheduling with Google Calendar integration.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SyncTracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlitedb.Open(sqlitedb.Config{Path: cfg.SQLite.Path})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database ready at %s", cfg.SQLite.Path)

	// 4. Scheduling engine
	registry, err := scheduler.NewRegistry()
	if err != nil {
		logger.Error(ctx, "Failed to build phase registry: ", err)
		return
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Warn(ctx, "Google Calendar credentials not configured, scheduling without busy data")
	}
	busySource := calendar.NewBusyAdapter(calendarClient)

	workingHours := scheduler.WorkingHours{
		Start: cfg.Scheduling.WorkingHoursStart,
		End:   cfg.Scheduling.WorkingHoursEnd,
	}

	// 6. Cycle domain
	anchorRepo, err := cycleSQLite.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to init anchor repository: ", err)
		return
	}
	cycleUseCase := cycleUC.New(logger, registry, anchorRepo)
	cycleHandler := cycleHTTP.New(logger, cycleUseCase)

	// 7. Task domain
	taskRepo := taskSQLite.New(db, logger)
	var taskCalendar taskUC.CalendarClient
	if calendarClient != nil {
		taskCalendar = calendarClient
	}
	taskUseCase := taskUC.New(logger, registry, taskRepo, anchorRepo, taskCalendar, busySource, taskUC.Config{
		Timezone:     cfg.Scheduling.Timezone,
		WorkingHours: workingHours,
		HorizonDays:  cfg.Scheduling.HorizonDays,
	})
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 8. Calendar domain
	calendarUseCase := calendarUC.New(logger, registry, busySource, taskRepo, anchorRepo, calendarUC.Config{
		WorkingHours: workingHours,
		HorizonDays:  cfg.Scheduling.HorizonDays,
	})
	calendarHandler := calendarHTTP.New(logger, calendarUseCase)

	// 9. Daily digest
	if cfg.Digest.Enabled {
		loc, locErr := time.LoadLocation(cfg.Scheduling.Timezone)
		if locErr != nil {
			logger.Warnf(ctx, "Invalid timezone %q, digest falls back to UTC: %v", cfg.Scheduling.Timezone, locErr)
			loc = time.UTC
		}
		d := digest.New(logger, registry, anchorRepo, cfg.Digest.Spec, loc)
		if err := d.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start digest: ", err)
			return
		}
		defer d.Stop()
	}

	// 10. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		CycleHandler:    cycleHandler,
		TaskHandler:     taskHandler,
		CalendarHandler: calendarHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
