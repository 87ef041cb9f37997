package usecase

import (
	"context"
	"fmt"

	"synctracker/internal/model"
	"synctracker/internal/task"
	"synctracker/internal/task/repository"
)

const defaultUpcomingDays = 7

// List returns the user's stored tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Category != "" && !input.Category.Valid() {
		return task.ListOutput{}, fmt.Errorf("%w: unknown category %q", task.ErrInvalidTask, input.Category)
	}

	tasks, err := uc.repo.ListTasks(ctx, sc.UserID, repository.ListTasksOptions{
		Category:         input.Category,
		IncludeCompleted: input.IncludeCompleted,
		Limit:            input.Limit,
	})
	if err != nil {
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// Upcoming returns scheduler-created calendar events in the next N days.
// Without a configured calendar client the answer is an empty list, not
// an error.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, input task.UpcomingInput) (task.UpcomingOutput, error) {
	if uc.calendar == nil {
		return task.UpcomingOutput{}, nil
	}

	days := input.Days
	if days <= 0 {
		days = defaultUpcomingDays
	}

	events, err := uc.calendar.UpcomingTrackedEvents(ctx, uc.now(), days)
	if err != nil {
		return task.UpcomingOutput{}, fmt.Errorf("list upcoming events: %w", err)
	}

	out := task.UpcomingOutput{Events: make([]task.UpcomingEvent, 0, len(events))}
	for _, ev := range events {
		out.Events = append(out.Events, task.UpcomingEvent{
			EventID:   ev.ID,
			Summary:   ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			HTMLLink:  ev.HtmlLink,
		})
	}
	out.Count = len(out.Events)
	return out, nil
}

// Complete marks a task as done.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, taskID string) (task.CompleteOutput, error) {
	if taskID == "" {
		return task.CompleteOutput{}, fmt.Errorf("%w: task id is required", task.ErrInvalidTask)
	}

	t, err := uc.repo.MarkCompleted(ctx, sc.UserID, taskID)
	if err != nil {
		return task.CompleteOutput{}, err
	}

	// Free the calendar block; the task stays completed even if the
	// event cannot be removed.
	if uc.calendar != nil && t.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "task.usecase.Complete.DeleteEvent: %v", err)
		}
	}

	uc.l.Infof(ctx, "task %s completed by user %s", taskID, sc.UserID)
	return task.CompleteOutput{Task: t}, nil
}
