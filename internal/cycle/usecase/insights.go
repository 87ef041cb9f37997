package usecase

import (
	"context"
	"fmt"
	"strings"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
)

// Insights builds the daily digest: current phase, its characteristics,
// the recommended categories, and when the next phase begins.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (cycle.InsightsOutput, error) {
	anchor, err := uc.repo.GetAnchor(ctx, sc.UserID)
	if err != nil {
		return cycle.InsightsOutput{}, err
	}

	now := uc.now()
	profile, day := uc.resolver.Resolve(anchor, now)
	phase := cycle.NewPhaseOutput(profile, day, uc.registry.OptimalCategories(profile.Phase))

	// Walk forward until the phase changes to find its first day.
	nextPhase := profile.Phase
	nextStart := now
	for i := 1; i <= anchor.CycleLength; i++ {
		candidate := now.AddDate(0, 0, i)
		p, _ := uc.resolver.Resolve(anchor, candidate)
		if p.Phase != profile.Phase {
			nextPhase = p.Phase
			nextStart = candidate
			break
		}
	}

	categories := make([]string, 0, len(phase.OptimalCategories))
	for _, c := range phase.OptimalCategories {
		categories = append(categories, string(c))
	}

	summary := fmt.Sprintf(
		"Day %d of your cycle (%s phase). Energy %d/10, focus %d/10. Good day for: %s.",
		day, profile.Phase, profile.EnergyLevel, profile.FocusLevel,
		strings.Join(categories, ", "))

	return cycle.InsightsOutput{
		Phase:          phase,
		Summary:        summary,
		NextPhase:      nextPhase,
		NextPhaseStart: nextStart,
	}, nil
}
