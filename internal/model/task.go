package model

import "time"

// TaskCategory is the closed set of task categories the scheduler knows
// about. Keeping this a closed enum (instead of free-form strings) makes
// a misspelled category a validation error rather than a silent default.
type TaskCategory string

const (
	CategoryCreative       TaskCategory = "creative"
	CategoryAnalytical     TaskCategory = "analytical"
	CategoryPhysical       TaskCategory = "physical"
	CategorySocial         TaskCategory = "social"
	CategoryAdministrative TaskCategory = "administrative"
	CategoryStrategic      TaskCategory = "strategic"
	CategoryDetailOriented TaskCategory = "detail_oriented"
	CategoryCommunication  TaskCategory = "communication"
	CategoryLearning       TaskCategory = "learning"
	CategoryReflection     TaskCategory = "reflection"
)

// Categories lists every known task category.
var Categories = []TaskCategory{
	CategoryCreative,
	CategoryAnalytical,
	CategoryPhysical,
	CategorySocial,
	CategoryAdministrative,
	CategoryStrategic,
	CategoryDetailOriented,
	CategoryCommunication,
	CategoryLearning,
	CategoryReflection,
}

// Valid reports whether c is a known task category.
func (c TaskCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Priority bounds for tasks.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Task is the unit of work the scheduler places on the calendar.
// ID is assigned on commit; ScheduledAt stays nil until a slot has been
// chosen and persisted by the caller of the engine.
type Task struct {
	ID              string
	Title           string
	Description     string
	Category        TaskCategory
	DurationMinutes int
	Priority        int
	Deadline        *time.Time
	CreatedAt       time.Time
	ScheduledAt     *time.Time
	CalendarEventID string
	Completed       bool
}
