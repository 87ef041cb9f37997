package scheduler

import (
	"fmt"

	"synctracker/internal/model"
)

// Phase day ranges within a cycle. The luteal phase runs from
// lutealStart through the final day of the cycle, so the four ranges
// partition 1..cycleLength for every valid cycle length.
const (
	menstrualEnd  = 5
	follicularEnd = 13
	ovulatoryEnd  = 16
	lutealStart   = ovulatoryEnd + 1
)

// Registry is the immutable phase-profile and task-affinity table.
// Built once at process start; safe for concurrent reads, no locking
// needed because nothing mutates it after construction.
type Registry struct {
	profiles   []PhaseProfile
	affinities map[model.TaskCategory]TaskAffinity
}

// NewRegistry builds the static tables and validates their invariants:
// the day ranges must partition 1..cycleLength for every valid cycle
// length, and every task category must have exactly one affinity entry.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		profiles:   phaseProfiles(),
		affinities: make(map[model.TaskCategory]TaskAffinity, len(model.Categories)),
	}

	for _, a := range taskAffinities() {
		if !a.Category.Valid() {
			return nil, fmt.Errorf("%w: affinity for unknown category %q", ErrInvalidRegistry, a.Category)
		}
		if len(a.OptimalPhases) == 0 {
			return nil, fmt.Errorf("%w: affinity for %q has no optimal phases", ErrInvalidRegistry, a.Category)
		}
		if _, dup := r.affinities[a.Category]; dup {
			return nil, fmt.Errorf("%w: duplicate affinity for %q", ErrInvalidRegistry, a.Category)
		}
		r.affinities[a.Category] = a
	}
	for _, c := range model.Categories {
		if _, ok := r.affinities[c]; !ok {
			return nil, fmt.Errorf("%w: missing affinity for %q", ErrInvalidRegistry, c)
		}
	}

	if err := r.validatePartition(); err != nil {
		return nil, err
	}
	return r, nil
}

// validatePartition asserts that for every valid cycle length each cycle
// day maps to exactly one phase. This runs once at construction so the
// resolver's runtime fallback stays unreachable.
func (r *Registry) validatePartition() error {
	for length := model.MinCycleLength; length <= model.MaxCycleLength; length++ {
		for day := 1; day <= length; day++ {
			matches := 0
			for _, p := range r.Profiles(length) {
				if p.DayRange.Contains(day) {
					matches++
				}
			}
			if matches != 1 {
				return fmt.Errorf("%w: day %d of a %d-day cycle matches %d phases",
					ErrInvalidRegistry, day, length, matches)
			}
		}
	}
	return nil
}

// Profiles returns the four phase profiles with day ranges materialized
// for the given cycle length: the luteal range extends to the last day.
func (r *Registry) Profiles(cycleLength int) []PhaseProfile {
	out := make([]PhaseProfile, len(r.profiles))
	copy(out, r.profiles)
	last := len(out) - 1
	out[last].DayRange.End = cycleLength
	return out
}

// Profile returns the profile for a single phase.
func (r *Registry) Profile(phase model.CyclePhase) (PhaseProfile, bool) {
	for _, p := range r.profiles {
		if p.Phase == phase {
			return p, true
		}
	}
	return PhaseProfile{}, false
}

// Affinity returns the affinity entry for a category. The second return
// is false for unknown categories; the scorer treats that as neutral
// rather than an error.
func (r *Registry) Affinity(category model.TaskCategory) (TaskAffinity, bool) {
	a, ok := r.affinities[category]
	return a, ok
}

// Affinities returns every affinity entry, ordered as the category enum.
func (r *Registry) Affinities() []TaskAffinity {
	out := make([]TaskAffinity, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, r.affinities[c])
	}
	return out
}

// OptimalCategories returns the categories whose affinity names the
// given phase as optimal.
func (r *Registry) OptimalCategories(phase model.CyclePhase) []TaskAffinity {
	var out []TaskAffinity
	for _, c := range model.Categories {
		if a := r.affinities[c]; a.OptimalIn(phase) {
			out = append(out, a)
		}
	}
	return out
}

func phaseProfiles() []PhaseProfile {
	return []PhaseProfile{
		{
			Phase:           model.PhaseMenstrual,
			DayRange:        DayRange{1, menstrualEnd},
			EnergyLevel:     3,
			FocusLevel:      6,
			CreativityLevel: 4,
			SocialEnergy:    2,
			AnalyticalLevel: 7,
			PhysicalLevel:   2,
			Characteristics: []string{
				"Introspective and reflective",
				"Good for planning and organizing",
				"Lower energy but high focus",
				"Excellent for detail-oriented work",
				"Good time for analysis and evaluation",
			},
		},
		{
			Phase:           model.PhaseFollicular,
			DayRange:        DayRange{menstrualEnd + 1, follicularEnd},
			EnergyLevel:     7,
			FocusLevel:      8,
			CreativityLevel: 9,
			SocialEnergy:    6,
			AnalyticalLevel: 8,
			PhysicalLevel:   7,
			Characteristics: []string{
				"Rising energy and optimism",
				"Peak creativity and innovation",
				"Great for new projects",
				"High learning capacity",
				"Good for problem-solving",
			},
		},
		{
			Phase:           model.PhaseOvulatory,
			DayRange:        DayRange{follicularEnd + 1, ovulatoryEnd},
			EnergyLevel:     9,
			FocusLevel:      7,
			CreativityLevel: 8,
			SocialEnergy:    10,
			AnalyticalLevel: 6,
			PhysicalLevel:   9,
			Characteristics: []string{
				"Peak energy and confidence",
				"Excellent for communication",
				"Great for presentations and meetings",
				"High social energy",
				"Perfect for networking and collaboration",
			},
		},
		{
			Phase:           model.PhaseLuteal,
			DayRange:        DayRange{lutealStart, model.DefaultCycleLength},
			EnergyLevel:     5,
			FocusLevel:      9,
			CreativityLevel: 5,
			SocialEnergy:    4,
			AnalyticalLevel: 9,
			PhysicalLevel:   4,
			Characteristics: []string{
				"High attention to detail",
				"Excellent for administrative tasks",
				"Good for editing and reviewing",
				"Strong analytical thinking",
				"Perfect for completing projects",
			},
		},
	}
}

func taskAffinities() []TaskAffinity {
	return []TaskAffinity{
		{
			Category:      model.CategoryCreative,
			OptimalPhases: []model.CyclePhase{model.PhaseFollicular, model.PhaseOvulatory},
			EnergyLevel:   8,
			FocusLevel:    7,
			Description:   "Creative work, brainstorming, design, writing",
		},
		{
			Category:      model.CategoryAnalytical,
			OptimalPhases: []model.CyclePhase{model.PhaseMenstrual, model.PhaseLuteal},
			EnergyLevel:   6,
			FocusLevel:    9,
			Description:   "Data analysis, research, problem-solving",
		},
		{
			Category:      model.CategoryPhysical,
			OptimalPhases: []model.CyclePhase{model.PhaseFollicular, model.PhaseOvulatory},
			EnergyLevel:   8,
			FocusLevel:    6,
			Description:   "Exercise, physical activities, active tasks",
		},
		{
			Category:      model.CategorySocial,
			OptimalPhases: []model.CyclePhase{model.PhaseOvulatory},
			EnergyLevel:   9,
			FocusLevel:    7,
			Description:   "Meetings, presentations, networking, collaboration",
		},
		{
			Category:      model.CategoryAdministrative,
			OptimalPhases: []model.CyclePhase{model.PhaseLuteal, model.PhaseMenstrual},
			EnergyLevel:   5,
			FocusLevel:    9,
			Description:   "Admin tasks, organizing, filing, data entry",
		},
		{
			Category:      model.CategoryStrategic,
			OptimalPhases: []model.CyclePhase{model.PhaseMenstrual, model.PhaseFollicular},
			EnergyLevel:   6,
			FocusLevel:    8,
			Description:   "Planning, strategy, goal setting",
		},
		{
			Category:      model.CategoryDetailOriented,
			OptimalPhases: []model.CyclePhase{model.PhaseLuteal, model.PhaseMenstrual},
			EnergyLevel:   5,
			FocusLevel:    10,
			Description:   "Editing, proofreading, quality control",
		},
		{
			Category:      model.CategoryCommunication,
			OptimalPhases: []model.CyclePhase{model.PhaseOvulatory, model.PhaseFollicular},
			EnergyLevel:   8,
			FocusLevel:    7,
			Description:   "Calls, emails, presentations, negotiations",
		},
		{
			Category:      model.CategoryLearning,
			OptimalPhases: []model.CyclePhase{model.PhaseFollicular},
			EnergyLevel:   7,
			FocusLevel:    8,
			Description:   "Learning new skills, training, studying",
		},
		{
			Category:      model.CategoryReflection,
			OptimalPhases: []model.CyclePhase{model.PhaseMenstrual},
			EnergyLevel:   3,
			FocusLevel:    8,
			Description:   "Reflection, journaling, evaluation, planning",
		},
	}
}
