package usecase

import (
	"time"

	"synctracker/internal/cycle/repository"
	"synctracker/internal/scheduler"
	"synctracker/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	registry *scheduler.Registry
	resolver *scheduler.Resolver
	repo     repository.AnchorRepository
	now      func() time.Time
}

// New creates a new cycle UseCase instance.
func New(l log.Logger, registry *scheduler.Registry, repo repository.AnchorRepository) *implUseCase {
	return &implUseCase{
		l:        l,
		registry: registry,
		resolver: scheduler.NewResolver(registry),
		repo:     repo,
		now:      time.Now,
	}
}
