package usecase

import (
	"context"
	"time"

	"synctracker/internal/scheduler"
	"synctracker/internal/task/repository"
	"synctracker/pkg/gcalendar"
	"synctracker/pkg/log"

	cycleRepo "synctracker/internal/cycle/repository"
)

// CalendarClient is the slice of the Google Calendar client the task
// domain needs. A nil client disables event creation without disabling
// scheduling.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	UpcomingTrackedEvents(ctx context.Context, now time.Time, daysAhead int) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Config holds scheduling parameters shared by every request.
type Config struct {
	Timezone     string
	WorkingHours scheduler.WorkingHours
	HorizonDays  int
}

type implUseCase struct {
	l            log.Logger
	registry     *scheduler.Registry
	orchestrator *scheduler.Orchestrator
	ranker       *scheduler.Ranker
	repo         repository.TaskRepository
	anchors      cycleRepo.AnchorRepository
	calendar     CalendarClient
	busy         scheduler.BusySource
	cfg          Config
	now          func() time.Time
}

// New creates a new task UseCase instance. calendar and busy may be nil
// when no Google Calendar credentials are configured.
func New(
	l log.Logger,
	registry *scheduler.Registry,
	repo repository.TaskRepository,
	anchors cycleRepo.AnchorRepository,
	calendar CalendarClient,
	busy scheduler.BusySource,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:            l,
		registry:     registry,
		orchestrator: scheduler.NewOrchestrator(registry),
		ranker:       scheduler.NewRanker(registry),
		repo:         repo,
		anchors:      anchors,
		calendar:     calendar,
		busy:         busy,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (uc *implUseCase) horizonDays() int {
	if uc.cfg.HorizonDays > 0 {
		return uc.cfg.HorizonDays
	}
	return scheduler.DefaultHorizonDays
}
