package scheduler

import "time"

// DefaultWorkingHours is the 9-to-5 window used when the caller does not
// override it.
var DefaultWorkingHours = WorkingHours{Start: 9, End: 17}

// FindSlots returns the free slots of the given duration on one day,
// earliest first. The search is hour-granular: one candidate start per
// whole hour from hours.Start through hours.End-1. A candidate survives
// unless it overlaps a busy interval under the open-interval test, so
// back-to-back slots touching a busy block at an endpoint are allowed.
// Returns an empty slice when nothing fits; never an error.
func FindSlots(day time.Time, busy []BusyInterval, durationMinutes int, hours WorkingHours) []Slot {
	if durationMinutes <= 0 || hours.End <= hours.Start {
		return nil
	}

	duration := time.Duration(durationMinutes) * time.Minute
	var slots []Slot

	for hour := hours.Start; hour < hours.End; hour++ {
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		end := start.Add(duration)

		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), hours.End, 0, 0, 0, day.Location())
		if end.After(dayEnd) {
			break
		}

		if !overlapsAny(start, end, busy) {
			slots = append(slots, Slot{Start: start, End: end})
		}
	}
	return slots
}

func overlapsAny(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// isWeekend reports whether the date falls on Saturday or Sunday.
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
