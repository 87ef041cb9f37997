package cycle

import (
	"time"

	"synctracker/internal/model"
	"synctracker/internal/scheduler"
)

// SetupInput is the input for creating or replacing a cycle anchor.
type SetupInput struct {
	AnchorDate   time.Time
	CycleLength  int
	PeriodLength int
}

// SetupOutput returns the stored anchor plus the phase it implies today.
type SetupOutput struct {
	Anchor model.CycleAnchor
	Phase  PhaseOutput
}

// PhaseOutput describes a resolved phase for one date.
type PhaseOutput struct {
	Phase             model.CyclePhase
	DayInCycle        int
	Characteristics   []string
	EnergyLevel       int
	FocusLevel        int
	CreativityLevel   int
	SocialEnergy      int
	OptimalCategories []model.TaskCategory
}

// InsightsOutput is the daily digest for a user.
type InsightsOutput struct {
	Phase          PhaseOutput
	Summary        string
	NextPhase      model.CyclePhase
	NextPhaseStart time.Time
}

// Recommendation pairs a category with its affinity details.
type Recommendation struct {
	Category    model.TaskCategory
	Description string
	EnergyLevel int
	FocusLevel  int
}

// RecommendationsOutput lists recommended categories for the current phase.
type RecommendationsOutput struct {
	Phase           model.CyclePhase
	Characteristics []string
	EnergyLevel     int
	FocusLevel      int
	Recommended     []Recommendation
}

// NewPhaseOutput assembles a PhaseOutput from a resolved profile and the
// affinities that name its phase optimal.
func NewPhaseOutput(profile scheduler.PhaseProfile, day int, optimal []scheduler.TaskAffinity) PhaseOutput {
	categories := make([]model.TaskCategory, 0, len(optimal))
	for _, a := range optimal {
		categories = append(categories, a.Category)
	}
	return PhaseOutput{
		Phase:             profile.Phase,
		DayInCycle:        day,
		Characteristics:   profile.Characteristics,
		EnergyLevel:       profile.EnergyLevel,
		FocusLevel:        profile.FocusLevel,
		CreativityLevel:   profile.CreativityLevel,
		SocialEnergy:      profile.SocialEnergy,
		OptimalCategories: categories,
	}
}
