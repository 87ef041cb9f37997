package usecase

import (
	"context"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
)

// Setup validates and stores the user's cycle anchor, replacing any
// previous one wholesale, and reports the phase it implies today.
func (uc *implUseCase) Setup(ctx context.Context, sc model.Scope, input cycle.SetupInput) (cycle.SetupOutput, error) {
	anchor, err := model.NewCycleAnchor(input.AnchorDate, input.CycleLength, input.PeriodLength)
	if err != nil {
		return cycle.SetupOutput{}, err
	}

	if err := uc.repo.UpsertAnchor(ctx, sc.UserID, anchor); err != nil {
		uc.l.Errorf(ctx, "uc.Setup UpsertAnchor: %v", err)
		return cycle.SetupOutput{}, err
	}

	uc.l.Infof(ctx, "cycle anchor replaced for user %s (cycle=%dd period=%dd)",
		sc.UserID, anchor.CycleLength, anchor.PeriodLength)

	return cycle.SetupOutput{
		Anchor: anchor,
		Phase:  uc.phaseFor(anchor),
	}, nil
}

// CurrentPhase resolves the user's phase for today.
func (uc *implUseCase) CurrentPhase(ctx context.Context, sc model.Scope) (cycle.PhaseOutput, error) {
	anchor, err := uc.repo.GetAnchor(ctx, sc.UserID)
	if err != nil {
		return cycle.PhaseOutput{}, err
	}
	return uc.phaseFor(anchor), nil
}

// Recommendations lists the categories whose affinity names the user's
// current phase as optimal.
func (uc *implUseCase) Recommendations(ctx context.Context, sc model.Scope) (cycle.RecommendationsOutput, error) {
	anchor, err := uc.repo.GetAnchor(ctx, sc.UserID)
	if err != nil {
		return cycle.RecommendationsOutput{}, err
	}

	profile, _ := uc.resolver.Resolve(anchor, uc.now())

	var recommended []cycle.Recommendation
	for _, a := range uc.registry.OptimalCategories(profile.Phase) {
		recommended = append(recommended, cycle.Recommendation{
			Category:    a.Category,
			Description: a.Description,
			EnergyLevel: a.EnergyLevel,
			FocusLevel:  a.FocusLevel,
		})
	}

	return cycle.RecommendationsOutput{
		Phase:           profile.Phase,
		Characteristics: profile.Characteristics,
		EnergyLevel:     profile.EnergyLevel,
		FocusLevel:      profile.FocusLevel,
		Recommended:     recommended,
	}, nil
}

func (uc *implUseCase) phaseFor(anchor model.CycleAnchor) cycle.PhaseOutput {
	profile, day := uc.resolver.Resolve(anchor, uc.now())
	return cycle.NewPhaseOutput(profile, day, uc.registry.OptimalCategories(profile.Phase))
}
