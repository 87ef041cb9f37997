package scheduler

import (
	"context"
	"time"

	"synctracker/internal/model"
)

// PhaseProfile describes the characteristic attribute levels of one
// cycle phase over an inclusive day range within the cycle.
type PhaseProfile struct {
	Phase           model.CyclePhase
	DayRange        DayRange
	EnergyLevel     int // 1-10
	FocusLevel      int // 1-10
	CreativityLevel int // 1-10
	SocialEnergy    int // 1-10
	AnalyticalLevel int // 1-10
	PhysicalLevel   int // 1-10
	Characteristics []string
}

// DayRange is an inclusive range of 1-based cycle days.
type DayRange struct {
	Start int
	End   int
}

// Contains reports whether day falls inside the range.
func (r DayRange) Contains(day int) bool {
	return day >= r.Start && day <= r.End
}

// TaskAffinity declares in which phases a task category performs best,
// together with its nominal energy and focus requirements.
type TaskAffinity struct {
	Category      model.TaskCategory
	OptimalPhases []model.CyclePhase
	EnergyLevel   int // 1-10, nominal requirement
	FocusLevel    int // 1-10, nominal requirement
	Description   string
}

// OptimalIn reports whether phase is one of the affinity's optimal phases.
func (a TaskAffinity) OptimalIn(phase model.CyclePhase) bool {
	for _, p := range a.OptimalPhases {
		if p == phase {
			return true
		}
	}
	return false
}

// BusyInterval is a read-only snapshot of an occupied calendar interval.
type BusyInterval struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// Slot is a calendar-feasible start/end interval for a task.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length.
func (s Slot) Duration() time.Duration { return s.End.Sub(s.Start) }

// RankedDate pairs a candidate date with its fitness score and the
// cycle phase it falls in.
type RankedDate struct {
	Date  time.Time
	Score float64
	Phase model.CyclePhase
}

// WorkingHours bounds the daily slot search, [Start, End) in whole hours.
type WorkingHours struct {
	Start int
	End   int
}

// BusySource provides busy intervals for a time range. A nil source, or
// one returning an empty slice, means the calendar is fully available;
// absence of calendar access is never an error here.
type BusySource interface {
	BusyIntervals(ctx context.Context, from, to time.Time) ([]BusyInterval, error)
}

// Result is the outcome of a successful scheduling run. The engine does
// not persist anything; the caller commits the slot and the task.
type Result struct {
	Slot       Slot
	Score      float64
	Phase      model.CyclePhase
	DayInCycle int
	Reasoning  string
}
