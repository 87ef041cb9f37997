package cycle

import (
	"context"

	"synctracker/internal/model"
)

// UseCase defines the business logic interface for the cycle domain.
type UseCase interface {
	// Setup validates and stores (or wholly replaces) the user's cycle anchor.
	Setup(ctx context.Context, sc model.Scope, input SetupInput) (SetupOutput, error)

	// CurrentPhase resolves the user's phase for today.
	CurrentPhase(ctx context.Context, sc model.Scope) (PhaseOutput, error)

	// Insights returns the daily phase summary with recommended categories.
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)

	// Recommendations lists the task categories best suited to the current phase.
	Recommendations(ctx context.Context, sc model.Scope) (RecommendationsOutput, error)
}
