package task

import (
	"time"

	"synctracker/internal/model"
	"synctracker/internal/scheduler"
)

// ScheduleInput describes one task to place on the calendar.
type ScheduleInput struct {
	Title           string
	Description     string
	Category        model.TaskCategory
	DurationMinutes int
	Priority        int
	Deadline        *time.Time
}

// ScheduleOutput is the result of placing a task.
type ScheduleOutput struct {
	Task            model.Task
	Slot            scheduler.Slot
	Score           float64
	Phase           model.CyclePhase
	DayInCycle      int
	Reasoning       string
	CalendarEventID string
	CalendarLink    string
}

// BatchScheduleInput ranks candidate dates for several tasks at once.
type BatchScheduleInput struct {
	Tasks []ScheduleInput
	TopK  int
}

// TaskSuggestion holds the ranked dates for a single task.
type TaskSuggestion struct {
	Title    string
	Category model.TaskCategory
	Dates    []scheduler.RankedDate
}

// BatchScheduleOutput is the result of ranking a batch of tasks.
type BatchScheduleOutput struct {
	Suggestions []TaskSuggestion
}

// ListInput filters the stored task listing.
type ListInput struct {
	Category         model.TaskCategory
	IncludeCompleted bool
	Limit            int
}

// ListOutput holds the stored tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// UpcomingInput bounds the upcoming events window.
type UpcomingInput struct {
	Days int
}

// UpcomingEvent is a calendar event previously created by the scheduler.
type UpcomingEvent struct {
	EventID   string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	HTMLLink  string
}

// UpcomingOutput holds the scheduler-tagged calendar events.
type UpcomingOutput struct {
	Events []UpcomingEvent
	Count  int
}

// CompleteOutput is the result of marking a task done.
type CompleteOutput struct {
	Task model.Task
}
