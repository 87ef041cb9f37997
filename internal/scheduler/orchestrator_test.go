package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"synctracker/internal/model"
)

// stubBusySource serves canned busy intervals keyed by calendar date.
type stubBusySource struct {
	byDate map[string][]BusyInterval
	err    error
	calls  int
}

func (s *stubBusySource) BusyIntervals(_ context.Context, from, _ time.Time) ([]BusyInterval, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.byDate[from.Format("2006-01-02")], nil
}

// fullDay marks an entire working day busy.
func fullDay(day time.Time) []BusyInterval {
	return []BusyInterval{{
		Start: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		End:   time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, day.Location()),
	}}
}

func TestScheduleEmptyCalendar(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC) // a Monday

	task := testTask(model.CategoryCreative, 3)
	res, err := orch.Schedule(context.Background(), task, anchor, nil, Options{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Slot.Start.Hour() != DefaultWorkingHours.Start {
		t.Errorf("earliest slot should start at %d:00, got %v", DefaultWorkingHours.Start, res.Slot.Start)
	}
	if isWeekend(res.Slot.Start) {
		t.Errorf("scheduled on a weekend: %s", res.Slot.Start.Weekday())
	}
	if res.Score <= 0 || res.Score > 1 {
		t.Errorf("score %v out of range", res.Score)
	}
	if !res.Phase.Valid() {
		t.Errorf("invalid phase %q in result", res.Phase)
	}
	if res.Reasoning == "" {
		t.Error("expected reasoning text")
	}
}

func TestSchedulePrefersBestRankedDay(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	scorer := NewScorer(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	task := testTask(model.CategoryCreative, 2)
	res, err := orch.Schedule(context.Background(), task, anchor, &stubBusySource{}, Options{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No weekday within the horizon may outscore the chosen day.
	chosen := scorer.Score(task, res.Slot.Start, anchor)
	for i := 0; i < DefaultHorizonDays; i++ {
		day := now.AddDate(0, 0, i)
		if isWeekend(day) {
			continue
		}
		if s := scorer.Score(task, day, anchor); s > chosen+1e-9 {
			t.Errorf("day %s scores %v, beating chosen %v", day.Format("2006-01-02"), s, chosen)
		}
	}
}

func TestScheduleFallsBackToNextRankedDay(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	task := testTask(model.CategoryCreative, 2)

	// Find the winner on a free calendar, then fully book that day.
	free, err := orch.Schedule(context.Background(), task, anchor, nil, Options{Now: now})
	if err != nil {
		t.Fatalf("unexpected error on free calendar: %v", err)
	}
	bestDay := free.Slot.Start

	src := &stubBusySource{byDate: map[string][]BusyInterval{
		bestDay.Format("2006-01-02"): fullDay(bestDay),
	}}
	res, err := orch.Schedule(context.Background(), task, anchor, src, Options{Now: now})
	if err != nil {
		t.Fatalf("unexpected error with booked best day: %v", err)
	}
	if res.Slot.Start.Format("2006-01-02") == bestDay.Format("2006-01-02") {
		t.Error("orchestrator did not fall back past the fully booked best day")
	}
}

func TestScheduleNoFeasibleSlot(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	// Every day of the horizon is fully booked.
	byDate := make(map[string][]BusyInterval)
	for i := 0; i < DefaultHorizonDays; i++ {
		day := now.AddDate(0, 0, i)
		byDate[day.Format("2006-01-02")] = fullDay(day)
	}

	_, err := orch.Schedule(context.Background(), testTask(model.CategoryAnalytical, 5), anchor,
		&stubBusySource{byDate: byDate}, Options{Now: now})
	if !errors.Is(err, ErrNoFeasibleSlot) {
		t.Fatalf("expected ErrNoFeasibleSlot, got %v", err)
	}
}

func TestScheduleBusySourceErrorPropagates(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	boom := errors.New("calendar exploded")
	_, err := orch.Schedule(context.Background(), testTask(model.CategoryCreative, 1), anchor,
		&stubBusySource{err: boom}, Options{Now: now})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

// A scheduled task re-scored at its chosen date should never fall below
// the neutral baseline when its category has a defined affinity.
func TestScheduleRoundTripScore(t *testing.T) {
	r, _ := NewRegistry()
	orch := NewOrchestrator(r)
	scorer := NewScorer(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)

	for _, category := range model.Categories {
		task := testTask(category, 2)
		res, err := orch.Schedule(context.Background(), task, anchor, nil, Options{Now: now})
		if err != nil {
			t.Fatalf("category %s: unexpected error: %v", category, err)
		}
		if got := scorer.Score(task, res.Slot.Start, anchor); got < 0.5 {
			t.Errorf("category %s: round-trip score %v below neutral baseline", category, got)
		}
	}
}
