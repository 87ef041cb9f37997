package usecase

import (
	"time"

	"synctracker/internal/scheduler"
	"synctracker/pkg/log"

	cycleRepo "synctracker/internal/cycle/repository"
	taskRepo "synctracker/internal/task/repository"
)

// Config holds availability parameters shared by every request.
type Config struct {
	WorkingHours scheduler.WorkingHours
	HorizonDays  int
}

type implUseCase struct {
	l        log.Logger
	busy     scheduler.BusySource
	tasks    taskRepo.TaskRepository
	anchors  cycleRepo.AnchorRepository
	resolver *scheduler.Resolver
	ranker   *scheduler.Ranker
	cfg      Config
	now      func() time.Time
}

// New creates a new calendar UseCase instance. busy may be nil when no
// Google Calendar credentials are configured.
func New(
	l log.Logger,
	registry *scheduler.Registry,
	busy scheduler.BusySource,
	tasks taskRepo.TaskRepository,
	anchors cycleRepo.AnchorRepository,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:        l,
		busy:     busy,
		tasks:    tasks,
		anchors:  anchors,
		resolver: scheduler.NewResolver(registry),
		ranker:   scheduler.NewRanker(registry),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (uc *implUseCase) workingHours() scheduler.WorkingHours {
	if uc.cfg.WorkingHours.End > uc.cfg.WorkingHours.Start {
		return uc.cfg.WorkingHours
	}
	return scheduler.DefaultWorkingHours
}

func (uc *implUseCase) horizonDays() int {
	if uc.cfg.HorizonDays > 0 {
		return uc.cfg.HorizonDays
	}
	return scheduler.DefaultHorizonDays
}
