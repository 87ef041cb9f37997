package scheduler

import "errors"

// Domain-specific errors for the scheduling engine.
var (
	// ErrNoFeasibleSlot means no ranked date within the horizon had a
	// free slot long enough. The caller decides whether to widen the
	// horizon or relax working hours; the engine never retries.
	ErrNoFeasibleSlot = errors.New("no feasible slot within horizon")

	// ErrInvalidRegistry means the static phase tables violate the
	// partition invariant. Raised at construction, never per request.
	ErrInvalidRegistry = errors.New("invalid phase registry")
)
