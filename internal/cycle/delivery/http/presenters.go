package http

import (
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
)

// --- Request DTOs ---

type setupReq struct {
	UserID       string    `json:"user_id"       binding:"required"`
	AnchorDate   time.Time `json:"last_period_start" binding:"required"`
	CycleLength  int       `json:"cycle_length"`
	PeriodLength int       `json:"period_length"`
}

func (r setupReq) validate() error { return nil }

func (r setupReq) toInput() cycle.SetupInput {
	cycleLength := r.CycleLength
	if cycleLength == 0 {
		cycleLength = model.DefaultCycleLength
	}
	periodLength := r.PeriodLength
	if periodLength == 0 {
		periodLength = model.DefaultPeriodLength
	}
	return cycle.SetupInput{
		AnchorDate:   r.AnchorDate,
		CycleLength:  cycleLength,
		PeriodLength: periodLength,
	}
}

// --- Response DTOs ---

type phaseResp struct {
	Phase             string   `json:"phase"`
	DayInCycle        int      `json:"day_in_cycle"`
	Characteristics   []string `json:"characteristics"`
	EnergyLevel       int      `json:"energy_level"`
	FocusLevel        int      `json:"focus_level"`
	CreativityLevel   int      `json:"creativity_level"`
	SocialEnergy      int      `json:"social_energy"`
	OptimalCategories []string `json:"optimal_categories"`
}

func newPhaseResp(out cycle.PhaseOutput) phaseResp {
	categories := make([]string, 0, len(out.OptimalCategories))
	for _, c := range out.OptimalCategories {
		categories = append(categories, string(c))
	}
	return phaseResp{
		Phase:             string(out.Phase),
		DayInCycle:        out.DayInCycle,
		Characteristics:   out.Characteristics,
		EnergyLevel:       out.EnergyLevel,
		FocusLevel:        out.FocusLevel,
		CreativityLevel:   out.CreativityLevel,
		SocialEnergy:      out.SocialEnergy,
		OptimalCategories: categories,
	}
}

type setupResp struct {
	Message      string    `json:"message"`
	CurrentPhase phaseResp `json:"current_phase"`
}

func (h *handler) newSetupResp(out cycle.SetupOutput) setupResp {
	return setupResp{
		Message:      "Cycle data updated successfully",
		CurrentPhase: newPhaseResp(out.Phase),
	}
}

type insightsResp struct {
	Phase          phaseResp `json:"phase"`
	Summary        string    `json:"summary"`
	NextPhase      string    `json:"next_phase"`
	NextPhaseStart string    `json:"next_phase_start"`
}

func (h *handler) newInsightsResp(out cycle.InsightsOutput) insightsResp {
	return insightsResp{
		Phase:          newPhaseResp(out.Phase),
		Summary:        out.Summary,
		NextPhase:      string(out.NextPhase),
		NextPhaseStart: out.NextPhaseStart.Format("2006-01-02"),
	}
}

type recommendationResp struct {
	Category          string `json:"task_category"`
	Description       string `json:"description"`
	EnergyRequirement int    `json:"energy_requirement"`
	FocusRequirement  int    `json:"focus_requirement"`
}

type recommendationsResp struct {
	CurrentPhase    string               `json:"current_phase"`
	Characteristics []string             `json:"phase_characteristics"`
	EnergyLevel     int                  `json:"energy_level"`
	FocusLevel      int                  `json:"focus_level"`
	Recommended     []recommendationResp `json:"recommended_tasks"`
}

func (h *handler) newRecommendationsResp(out cycle.RecommendationsOutput) recommendationsResp {
	recommended := make([]recommendationResp, 0, len(out.Recommended))
	for _, rec := range out.Recommended {
		recommended = append(recommended, recommendationResp{
			Category:          string(rec.Category),
			Description:       rec.Description,
			EnergyRequirement: rec.EnergyLevel,
			FocusRequirement:  rec.FocusLevel,
		})
	}
	return recommendationsResp{
		CurrentPhase:    string(out.Phase),
		Characteristics: out.Characteristics,
		EnergyLevel:     out.EnergyLevel,
		FocusLevel:      out.FocusLevel,
		Recommended:     recommended,
	}
}
