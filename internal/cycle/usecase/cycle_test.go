package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
	"synctracker/internal/scheduler"
)

func newTestUseCase(t *testing.T, now time.Time) (*implUseCase, *memoryAnchorRepo) {
	t.Helper()
	registry, err := scheduler.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	repo := newMemoryAnchorRepo()
	uc := New(&mockLogger{}, registry, repo)
	uc.now = func() time.Time { return now }
	return uc, repo
}

func TestSetup(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(t, now)
	sc := model.Scope{UserID: "user-1"}

	out, err := uc.Setup(context.Background(), sc, cycle.SetupInput{
		AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:  28,
		PeriodLength: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Anchor.CycleLength != 28 {
		t.Errorf("anchor cycle length = %d, want 28", out.Anchor.CycleLength)
	}
	// Jan 10 on a Jan 1 anchor is cycle day 10, follicular.
	if out.Phase.Phase != model.PhaseFollicular {
		t.Errorf("phase = %s, want follicular", out.Phase.Phase)
	}
	if out.Phase.DayInCycle != 10 {
		t.Errorf("day in cycle = %d, want 10", out.Phase.DayInCycle)
	}
}

func TestSetupRejectsInvalidAnchor(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Now())
	sc := model.Scope{UserID: "user-1"}

	tests := []struct {
		name  string
		input cycle.SetupInput
	}{
		{
			name: "cycle length too short",
			input: cycle.SetupInput{
				AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				CycleLength:  20,
				PeriodLength: 5,
			},
		},
		{
			name: "period length too long",
			input: cycle.SetupInput{
				AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				CycleLength:  28,
				PeriodLength: 9,
			},
		},
		{
			name: "missing anchor date",
			input: cycle.SetupInput{
				CycleLength:  28,
				PeriodLength: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Setup(context.Background(), sc, tt.input)
			if !errors.Is(err, model.ErrInvalidCycleAnchor) {
				t.Errorf("expected ErrInvalidCycleAnchor, got %v", err)
			}
		})
	}
}

func TestCurrentPhaseWithoutAnchor(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Now())

	_, err := uc.CurrentPhase(context.Background(), model.Scope{UserID: "nobody"})
	if !errors.Is(err, cycle.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
}

func TestRecommendations(t *testing.T) {
	// Jan 15 on a Jan 1 anchor is ovulatory: social must be recommended.
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(t, now)
	sc := model.Scope{UserID: "user-1"}

	if _, err := uc.Setup(context.Background(), sc, cycle.SetupInput{
		AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:  28,
		PeriodLength: 5,
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	out, err := uc.Recommendations(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Phase != model.PhaseOvulatory {
		t.Errorf("phase = %s, want ovulatory", out.Phase)
	}

	found := false
	for _, rec := range out.Recommended {
		if rec.Category == model.CategorySocial {
			found = true
			if rec.Description == "" {
				t.Error("recommendation missing description")
			}
		}
	}
	if !found {
		t.Error("social category should be recommended during ovulatory phase")
	}
}

func TestInsights(t *testing.T) {
	// Jan 4 is menstrual day 4; the next phase (follicular) starts Jan 6.
	now := time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(t, now)
	sc := model.Scope{UserID: "user-1"}

	if _, err := uc.Setup(context.Background(), sc, cycle.SetupInput{
		AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:  28,
		PeriodLength: 5,
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	out, err := uc.Insights(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Phase.Phase != model.PhaseMenstrual {
		t.Errorf("phase = %s, want menstrual", out.Phase.Phase)
	}
	if out.NextPhase != model.PhaseFollicular {
		t.Errorf("next phase = %s, want follicular", out.NextPhase)
	}
	wantStart := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)
	if out.NextPhaseStart.Day() != wantStart.Day() {
		t.Errorf("next phase start = %v, want Jan 6", out.NextPhaseStart)
	}
	if out.Summary == "" {
		t.Error("expected summary text")
	}
}

func TestSetupReplacesAnchorWholesale(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	uc, repo := newTestUseCase(t, now)
	sc := model.Scope{UserID: "user-1"}
	ctx := context.Background()

	if _, err := uc.Setup(ctx, sc, cycle.SetupInput{
		AnchorDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:  28,
		PeriodLength: 5,
	}); err != nil {
		t.Fatalf("first setup failed: %v", err)
	}

	if _, err := uc.Setup(ctx, sc, cycle.SetupInput{
		AnchorDate:   time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
		CycleLength:  30,
		PeriodLength: 4,
	}); err != nil {
		t.Fatalf("second setup failed: %v", err)
	}

	stored, err := repo.GetAnchor(ctx, sc.UserID)
	if err != nil {
		t.Fatalf("anchor missing after replace: %v", err)
	}
	if stored.CycleLength != 30 || stored.PeriodLength != 4 {
		t.Errorf("anchor not replaced wholesale: %+v", stored)
	}
}
