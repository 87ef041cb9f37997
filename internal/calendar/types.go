package calendar

import (
	"time"

	"synctracker/internal/scheduler"
)

// AvailabilityInput bounds the availability query. DurationMinutes sets
// the slot length used for the free-slot search (default 60).
type AvailabilityInput struct {
	From            time.Time
	To              time.Time
	DurationMinutes int
}

// DayAvailability holds one day's busy intervals and free slots.
type DayAvailability struct {
	Date  time.Time
	Busy  []scheduler.BusyInterval
	Free  []scheduler.Slot
	Phase string
}

// AvailabilityOutput is the result of an availability query.
type AvailabilityOutput struct {
	Days []DayAvailability
}

// ExportOutput carries the rendered iCalendar document.
type ExportOutput struct {
	ICal      string
	TaskCount int
}
