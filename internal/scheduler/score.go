package scheduler

import (
	"time"

	"synctracker/internal/model"
)

// Scoring policy. These weights are a tunable design choice, not derived
// from data; the regression tests pin them so changes are deliberate.
const (
	baseScoreOptimal    = 0.8 // phase is in the category's optimal set
	baseScoreOffPhase   = 0.3
	neutralScore        = 0.5 // unknown category: no preference
	phaseWeight         = 0.5
	energyWeight        = 0.3
	focusWeight         = 0.2
	priorityBoostPerLvl = 0.1 // priority 1 adds nothing, priority 5 adds 0.4
)

// Scorer computes the fitness of scheduling a task on a given date.
type Scorer struct {
	registry *Registry
	resolver *Resolver
}

// NewScorer creates a scorer over the given registry.
func NewScorer(registry *Registry) *Scorer {
	return &Scorer{
		registry: registry,
		resolver: NewResolver(registry),
	}
}

// Score returns a fitness score in [0.0, 1.0] for placing the task on
// the date. The priority boost can push the raw value above 1.0; it is
// clamped before return.
func (s *Scorer) Score(task model.Task, date time.Time, anchor model.CycleAnchor) float64 {
	profile, _ := s.resolver.Resolve(anchor, date)

	affinity, ok := s.registry.Affinity(task.Category)
	if !ok {
		return neutralScore
	}

	base := baseScoreOffPhase
	if affinity.OptimalIn(profile.Phase) {
		base = baseScoreOptimal
	}

	// The phase's own general profile, not the per-category nominal values.
	energyMatch := float64(profile.EnergyLevel) / 10
	focusMatch := float64(profile.FocusLevel) / 10

	score := base*phaseWeight + energyMatch*energyWeight + focusMatch*focusWeight
	score += float64(task.Priority-1) * priorityBoostPerLvl

	if score > 1.0 {
		return 1.0
	}
	return score
}
