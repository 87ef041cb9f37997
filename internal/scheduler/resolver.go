package scheduler

import (
	"time"

	"synctracker/internal/model"
)

// Resolver maps calendar dates to cycle phases. Pure function of its
// inputs; no clock access, no side effects.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a phase resolver over the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve returns the phase profile and 1-based day in cycle for a date.
// Time of day is ignored; the delta is computed in whole days. Dates
// before the anchor wrap backward through previous cycles, so resolving
// one day before the anchor yields the final cycle day.
func (r *Resolver) Resolve(anchor model.CycleAnchor, date time.Time) (PhaseProfile, int) {
	delta := wholeDaysBetween(anchor.AnchorDate, date)

	// Mathematical modulo, not truncating division: negative deltas
	// land on the correct day of an earlier cycle.
	cycleDay := ((delta%anchor.CycleLength)+anchor.CycleLength)%anchor.CycleLength + 1

	profiles := r.registry.Profiles(anchor.CycleLength)
	for _, p := range profiles {
		if p.DayRange.Contains(cycleDay) {
			return p, cycleDay
		}
	}

	// Unreachable while the registry partition invariant holds. Kept as
	// a defensive fallback to the final phase rather than failing.
	return profiles[len(profiles)-1], cycleDay
}

// wholeDaysBetween returns the number of whole calendar days from a to b,
// negative when b precedes a.
func wholeDaysBetween(a, b time.Time) int {
	af := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bf := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bf.Sub(af).Hours() / 24)
}
