package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"synctracker/internal/model"
)

func TestExportICal(t *testing.T) {
	uc, tasks := newTestUseCase(t, nil, true)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	scheduled := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	if err := tasks.CreateTask(ctx, "u1", model.Task{
		ID:              "t-1",
		Title:           "Design workshop",
		Description:     "Whiteboard session",
		Category:        model.CategoryCreative,
		DurationMinutes: 90,
		Priority:        3,
		CreatedAt:       testNow,
		ScheduledAt:     &scheduled,
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := tasks.CreateTask(ctx, "u1", model.Task{
		ID:              "t-2",
		Title:           "Budget review",
		Category:        model.CategoryAnalytical,
		DurationMinutes: 60,
		Priority:        2,
		CreatedAt:       testNow,
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	out, err := uc.ExportICal(ctx, sc)
	if err != nil {
		t.Fatalf("ExportICal: %v", err)
	}
	if out.TaskCount != 2 {
		t.Errorf("TaskCount = %d, want 2", out.TaskCount)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "END:VCALENDAR", "Design workshop", "Budget review", "t-1@synctracker"} {
		if !strings.Contains(out.ICal, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportICalSkipsUnscheduledWithoutAnchor(t *testing.T) {
	uc, tasks := newTestUseCase(t, nil, false)
	ctx := context.Background()

	if err := tasks.CreateTask(ctx, "u1", model.Task{
		ID:              "t-3",
		Title:           "Unscheduled chore",
		Category:        model.CategoryAdministrative,
		DurationMinutes: 30,
		Priority:        1,
		CreatedAt:       testNow,
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	out, err := uc.ExportICal(ctx, model.Scope{UserID: "u1"})
	if err != nil {
		t.Fatalf("ExportICal: %v", err)
	}
	if out.TaskCount != 0 {
		t.Errorf("TaskCount = %d, want 0 without cycle data", out.TaskCount)
	}
	if !strings.Contains(out.ICal, "BEGIN:VCALENDAR") {
		t.Error("export should still be a valid empty calendar")
	}
}
