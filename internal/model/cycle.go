package model

import (
	"fmt"
	"time"
)

// CyclePhase is one of the four recurring physiological phases within a cycle.
type CyclePhase string

const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulatory  CyclePhase = "ovulatory"
	PhaseLuteal     CyclePhase = "luteal"
)

// Phases lists all cycle phases in chronological order within a cycle.
var Phases = []CyclePhase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}

// Valid reports whether p is a known cycle phase.
func (p CyclePhase) Valid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal:
		return true
	}
	return false
}

// Bounds for cycle anchor parameters.
const (
	MinCycleLength  = 21
	MaxCycleLength  = 35
	MinPeriodLength = 3
	MaxPeriodLength = 8

	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// CycleAnchor is the reference point that makes cycle-day computation
// possible for any target date. It is immutable; updates replace the
// whole value, there is no partial mutation.
type CycleAnchor struct {
	AnchorDate   time.Time
	CycleLength  int
	PeriodLength int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCycleAnchor validates the anchor parameters and rejects invalid
// state at the boundary, before it can reach the scheduling engine.
func NewCycleAnchor(anchorDate time.Time, cycleLength, periodLength int) (CycleAnchor, error) {
	if anchorDate.IsZero() {
		return CycleAnchor{}, fmt.Errorf("%w: anchor date is required", ErrInvalidCycleAnchor)
	}
	if cycleLength < MinCycleLength || cycleLength > MaxCycleLength {
		return CycleAnchor{}, fmt.Errorf("%w: cycle length %d outside [%d, %d]",
			ErrInvalidCycleAnchor, cycleLength, MinCycleLength, MaxCycleLength)
	}
	if periodLength < MinPeriodLength || periodLength > MaxPeriodLength {
		return CycleAnchor{}, fmt.Errorf("%w: period length %d outside [%d, %d]",
			ErrInvalidCycleAnchor, periodLength, MinPeriodLength, MaxPeriodLength)
	}
	if periodLength > cycleLength {
		return CycleAnchor{}, fmt.Errorf("%w: period length %d exceeds cycle length %d",
			ErrInvalidCycleAnchor, periodLength, cycleLength)
	}

	now := time.Now().UTC()
	return CycleAnchor{
		AnchorDate:   anchorDate,
		CycleLength:  cycleLength,
		PeriodLength: periodLength,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
