package scheduler

import (
	"context"
	"fmt"
	"time"

	"synctracker/internal/model"
)

// DefaultHorizonDays is the forward window searched when the caller does
// not override it.
const DefaultHorizonDays = 14

// Options tune a single scheduling run.
type Options struct {
	Now          time.Time
	HorizonDays  int
	TopK         int
	WorkingHours WorkingHours
}

func (o Options) withDefaults() Options {
	if o.HorizonDays <= 0 {
		o.HorizonDays = DefaultHorizonDays
	}
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.WorkingHours.End <= o.WorkingHours.Start {
		o.WorkingHours = DefaultWorkingHours
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Orchestrator composes the ranker and the slot search to pick a
// concrete slot for a task. It performs no I/O of its own beyond the
// injected busy source and never persists anything.
type Orchestrator struct {
	registry *Registry
	resolver *Resolver
	ranker   *Ranker
}

// NewOrchestrator creates a scheduling orchestrator over the registry.
func NewOrchestrator(registry *Registry) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		resolver: NewResolver(registry),
		ranker:   NewRanker(registry),
	}
}

// Schedule ranks candidate dates for the task and returns the earliest
// free slot on the best-ranked feasible day. Weekend days are skipped.
// A nil busy source means the calendar is fully available. When every
// ranked day is exhausted the sentinel ErrNoFeasibleSlot is returned;
// widening the horizon is the caller's decision, the engine does not
// retry on its own.
func (o *Orchestrator) Schedule(ctx context.Context, task model.Task, anchor model.CycleAnchor, busySource BusySource, opts Options) (Result, error) {
	opts = opts.withDefaults()

	ranked := o.ranker.Rank(task, anchor, opts.Now, opts.HorizonDays, opts.TopK)

	for _, candidate := range ranked {
		if isWeekend(candidate.Date) {
			continue
		}

		busy, err := o.fetchBusy(ctx, busySource, candidate.Date, opts.WorkingHours)
		if err != nil {
			return Result{}, fmt.Errorf("fetch busy intervals for %s: %w",
				candidate.Date.Format("2006-01-02"), err)
		}

		slots := FindSlots(candidate.Date, busy, task.DurationMinutes, opts.WorkingHours)
		if len(slots) == 0 {
			continue
		}

		profile, dayInCycle := o.resolver.Resolve(anchor, candidate.Date)
		return Result{
			Slot:       slots[0],
			Score:      candidate.Score,
			Phase:      profile.Phase,
			DayInCycle: dayInCycle,
			Reasoning: fmt.Sprintf("Scheduled during %s phase for optimal %s performance",
				profile.Phase, task.Category),
		}, nil
	}

	return Result{}, ErrNoFeasibleSlot
}

func (o *Orchestrator) fetchBusy(ctx context.Context, src BusySource, day time.Time, hours WorkingHours) ([]BusyInterval, error) {
	if src == nil {
		return nil, nil
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), hours.Start, 0, 0, 0, day.Location())
	to := time.Date(day.Year(), day.Month(), day.Day(), hours.End, 0, 0, 0, day.Location())
	return src.BusyIntervals(ctx, from, to)
}
