package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"synctracker/internal/calendar"
	"synctracker/internal/model"
	"synctracker/internal/scheduler"
)

var testNow = time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, busy scheduler.BusySource, withAnchor bool) (*implUseCase, *memoryTaskRepo) {
	t.Helper()

	registry, err := scheduler.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	anchors := newMemoryAnchorRepo()
	if withAnchor {
		anchor, err := model.NewCycleAnchor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28, 5)
		if err != nil {
			t.Fatalf("NewCycleAnchor: %v", err)
		}
		if err := anchors.UpsertAnchor(context.Background(), "u1", anchor); err != nil {
			t.Fatalf("UpsertAnchor: %v", err)
		}
	}

	tasks := newMemoryTaskRepo()
	uc := New(&mockLogger{}, registry, busy, tasks, anchors, Config{})
	uc.now = func() time.Time { return testNow }
	return uc, tasks
}

func day(yearDay int) time.Time {
	return time.Date(2024, 1, yearDay, 0, 0, 0, 0, time.UTC)
}

func TestAvailability(t *testing.T) {
	busy := &stubBusySource{busy: map[string][]scheduler.BusyInterval{
		"2024-01-09": {{
			Start:   time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC),
			Summary: "Standup block",
		}},
	}}
	uc, _ := newTestUseCase(t, busy, true)

	out, err := uc.Availability(context.Background(), model.Scope{UserID: "u1"}, calendar.AvailabilityInput{
		From: day(8),
		To:   day(10),
	})
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if len(out.Days) != 3 {
		t.Fatalf("got %d days, want 3", len(out.Days))
	}

	free := out.Days[0]
	if len(free.Busy) != 0 || len(free.Free) != 8 {
		t.Errorf("free day: %d busy, %d free slots; want 0 and 8", len(free.Busy), len(free.Free))
	}
	if free.Phase != string(model.PhaseFollicular) {
		t.Errorf("day 8 phase = %q, want follicular", free.Phase)
	}

	blocked := out.Days[1]
	if len(blocked.Busy) != 1 {
		t.Fatalf("blocked day: %d busy intervals, want 1", len(blocked.Busy))
	}
	for _, slot := range blocked.Free {
		if slot.Start.Hour() >= 10 && slot.Start.Hour() < 12 {
			t.Errorf("free slot at %v overlaps the busy block", slot.Start)
		}
	}
}

func TestAvailabilityWithoutAnchor(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, false)

	out, err := uc.Availability(context.Background(), model.Scope{UserID: "u1"}, calendar.AvailabilityInput{
		From: day(8),
		To:   day(8),
	})
	if err != nil {
		t.Fatalf("Availability: %v", err)
	}
	if out.Days[0].Phase != "" {
		t.Errorf("expected empty phase without cycle data, got %q", out.Days[0].Phase)
	}
	if len(out.Days[0].Free) != 8 {
		t.Errorf("got %d free slots, want 8", len(out.Days[0].Free))
	}
}

func TestAvailabilityInvalidRange(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, true)
	sc := model.Scope{UserID: "u1"}

	_, err := uc.Availability(context.Background(), sc, calendar.AvailabilityInput{From: day(10), To: day(8)})
	if !errors.Is(err, calendar.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for reversed range, got %v", err)
	}

	_, err = uc.Availability(context.Background(), sc, calendar.AvailabilityInput{From: day(1), To: day(1).AddDate(0, 2, 0)})
	if !errors.Is(err, calendar.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for oversized range, got %v", err)
	}
}

func TestAvailabilityBusySourceError(t *testing.T) {
	busy := &stubBusySource{err: errors.New("calendar down")}
	uc, _ := newTestUseCase(t, busy, true)

	_, err := uc.Availability(context.Background(), model.Scope{UserID: "u1"}, calendar.AvailabilityInput{
		From: day(8),
		To:   day(8),
	})
	if err == nil || !strings.Contains(err.Error(), "calendar down") {
		t.Fatalf("expected busy source error to propagate, got %v", err)
	}
}
