package gcalendar

import (
	"time"

	"synctracker/internal/model"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"
	Category    model.TaskCategory
	Priority    int
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// BusyTime is an occupied interval read from the calendar.
type BusyTime struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// colorIDs maps task categories to Google Calendar event color IDs.
var colorIDs = map[model.TaskCategory]string{
	model.CategoryCreative:       "5",  // Yellow
	model.CategoryAnalytical:     "9",  // Blue
	model.CategoryPhysical:       "11", // Red
	model.CategorySocial:         "10", // Green
	model.CategoryAdministrative: "8",  // Gray
	model.CategoryStrategic:      "3",  // Purple
	model.CategoryDetailOriented: "6",  // Orange
	model.CategoryCommunication:  "2",  // Sage
	model.CategoryLearning:       "4",  // Flamingo
	model.CategoryReflection:     "1",  // Lavender
}

// ColorID returns the calendar color for a task category, defaulting to
// lavender for anything unknown.
func ColorID(category model.TaskCategory) string {
	if id, ok := colorIDs[category]; ok {
		return id
	}
	return "1"
}
