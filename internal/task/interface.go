package task

import (
	"context"

	"synctracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Schedule finds the best slot for a task given the user's cycle phase
	// and calendar, persists the task, and optionally creates a calendar event.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// BatchSchedule ranks candidate dates for several tasks at once without
	// committing any of them to the calendar.
	BatchSchedule(ctx context.Context, sc model.Scope, input BatchScheduleInput) (BatchScheduleOutput, error)

	// List returns the user's stored tasks.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Upcoming returns calendar events previously created by the scheduler.
	Upcoming(ctx context.Context, sc model.Scope, input UpcomingInput) (UpcomingOutput, error)

	// Complete marks a task as done.
	Complete(ctx context.Context, sc model.Scope, taskID string) (CompleteOutput, error)
}
