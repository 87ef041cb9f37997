package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"synctracker/internal/model"
	"synctracker/internal/scheduler"
	"synctracker/internal/task"
	"synctracker/pkg/gcalendar"
)

// Schedule resolves the best slot for the task, persists it, and tries
// to mirror it into the user's calendar. A calendar write failure is
// logged and degrades to a task without an event link; the chosen slot
// is kept either way.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input task.ScheduleInput) (task.ScheduleOutput, error) {
	if err := validateScheduleInput(input); err != nil {
		return task.ScheduleOutput{}, err
	}

	anchor, err := uc.anchors.GetAnchor(ctx, sc.UserID)
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	t := model.Task{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		DurationMinutes: input.DurationMinutes,
		Priority:        input.Priority,
		Deadline:        input.Deadline,
		CreatedAt:       uc.now(),
	}

	result, err := uc.orchestrator.Schedule(ctx, t, anchor, uc.busy, scheduler.Options{
		Now:          uc.now(),
		HorizonDays:  uc.cfg.HorizonDays,
		WorkingHours: uc.cfg.WorkingHours,
	})
	if err != nil {
		return task.ScheduleOutput{}, err
	}

	start := result.Slot.Start
	t.ScheduledAt = &start

	out := task.ScheduleOutput{
		Slot:       result.Slot,
		Score:      result.Score,
		Phase:      result.Phase,
		DayInCycle: result.DayInCycle,
		Reasoning:  result.Reasoning,
	}

	if uc.calendar != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     t.Title,
			Description: t.Description,
			StartTime:   result.Slot.Start,
			EndTime:     result.Slot.End,
			Timezone:    uc.cfg.Timezone,
			Category:    t.Category,
			Priority:    t.Priority,
		})
		if err != nil {
			uc.l.Warnf(ctx, "task.usecase.Schedule.CreateEvent: %v", err)
		} else {
			t.CalendarEventID = event.ID
			out.CalendarEventID = event.ID
			out.CalendarLink = event.HtmlLink
		}
	}

	if err := uc.repo.CreateTask(ctx, sc.UserID, t); err != nil {
		return task.ScheduleOutput{}, fmt.Errorf("persist task: %w", err)
	}

	out.Task = t
	return out, nil
}

func validateScheduleInput(input task.ScheduleInput) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", task.ErrInvalidTask)
	case !input.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", task.ErrInvalidTask, input.Category)
	case input.DurationMinutes <= 0:
		return fmt.Errorf("%w: duration must be positive", task.ErrInvalidTask)
	case input.Priority < model.MinPriority || input.Priority > model.MaxPriority:
		return fmt.Errorf("%w: priority must be between %d and %d",
			task.ErrInvalidTask, model.MinPriority, model.MaxPriority)
	}
	return nil
}
