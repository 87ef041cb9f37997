package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
	"synctracker/internal/scheduler"
	"synctracker/internal/task"
)

// Monday, day 8 of a cycle anchored on 2024-01-01 (follicular phase).
var testNow = time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, calendar CalendarClient) (*implUseCase, *memoryTaskRepo) {
	t.Helper()

	registry, err := scheduler.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	anchors := newMemoryAnchorRepo()
	anchor, err := model.NewCycleAnchor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28, 5)
	if err != nil {
		t.Fatalf("NewCycleAnchor: %v", err)
	}
	if err := anchors.UpsertAnchor(context.Background(), "u1", anchor); err != nil {
		t.Fatalf("UpsertAnchor: %v", err)
	}

	repo := newMemoryTaskRepo()
	uc := New(&mockLogger{}, registry, repo, anchors, calendar, nil, Config{Timezone: "UTC"})
	uc.now = func() time.Time { return testNow }
	return uc, repo
}

func validInput() task.ScheduleInput {
	return task.ScheduleInput{
		Title:           "Write quarterly plan",
		Description:     "Outline goals for Q1",
		Category:        model.CategoryStrategic,
		DurationMinutes: 60,
		Priority:        3,
	}
}

func TestSchedule(t *testing.T) {
	cal := &stubCalendar{}
	uc, repo := newTestUseCase(t, cal)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Schedule(context.Background(), sc, validInput())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if out.Task.ID == "" {
		t.Error("expected a generated task ID")
	}
	if out.Task.ScheduledAt == nil || !out.Task.ScheduledAt.Equal(out.Slot.Start) {
		t.Errorf("ScheduledAt = %v, want slot start %v", out.Task.ScheduledAt, out.Slot.Start)
	}
	if !out.Phase.Valid() {
		t.Errorf("invalid phase %q", out.Phase)
	}
	if out.CalendarEventID != "evt-1" || out.CalendarLink == "" {
		t.Errorf("expected calendar event to be linked, got id=%q link=%q", out.CalendarEventID, out.CalendarLink)
	}
	if len(cal.events) != 1 || cal.events[0].Summary != "Write quarterly plan" {
		t.Fatalf("expected one calendar event with the task title, got %+v", cal.events)
	}

	stored, err := repo.GetTask(context.Background(), "u1", out.Task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if stored.CalendarEventID != "evt-1" {
		t.Errorf("stored CalendarEventID = %q, want evt-1", stored.CalendarEventID)
	}
}

func TestScheduleCalendarFailureKeepsTask(t *testing.T) {
	cal := &stubCalendar{failNext: true}
	uc, repo := newTestUseCase(t, cal)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Schedule(context.Background(), sc, validInput())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if out.CalendarEventID != "" || out.CalendarLink != "" {
		t.Errorf("expected no calendar link after write failure, got id=%q link=%q",
			out.CalendarEventID, out.CalendarLink)
	}
	if out.Task.ScheduledAt == nil {
		t.Error("task should still carry a scheduled time")
	}
	if _, err := repo.GetTask(context.Background(), "u1", out.Task.ID); err != nil {
		t.Errorf("task should be persisted despite calendar failure: %v", err)
	}
}

func TestScheduleWithoutCalendarClient(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Schedule(context.Background(), sc, validInput())
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if out.CalendarEventID != "" {
		t.Errorf("expected no event without a calendar client, got %q", out.CalendarEventID)
	}
}

func TestScheduleWithoutAnchor(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)

	_, err := uc.Schedule(context.Background(), model.Scope{UserID: "stranger"}, validInput())
	if !errors.Is(err, cycle.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
}

func TestScheduleValidation(t *testing.T) {
	uc, _ := newTestUseCase(t, nil)
	sc := model.Scope{UserID: "u1"}

	cases := []struct {
		name   string
		mutate func(*task.ScheduleInput)
	}{
		{"missing title", func(in *task.ScheduleInput) { in.Title = "" }},
		{"unknown category", func(in *task.ScheduleInput) { in.Category = "knitting" }},
		{"zero duration", func(in *task.ScheduleInput) { in.DurationMinutes = 0 }},
		{"priority too high", func(in *task.ScheduleInput) { in.Priority = 6 }},
		{"priority too low", func(in *task.ScheduleInput) { in.Priority = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Schedule(context.Background(), sc, in)
			if !errors.Is(err, task.ErrInvalidTask) {
				t.Fatalf("expected ErrInvalidTask, got %v", err)
			}
		})
	}
}
