package scheduler

import (
	"sort"
	"time"

	"synctracker/internal/model"
)

// DefaultTopK caps how many ranked dates the engine returns by default.
const DefaultTopK = 10

// Ranker enumerates a forward window of candidate dates and orders them
// by fitness. "Now" is injected so ranking stays deterministic in tests.
type Ranker struct {
	scorer   *Scorer
	resolver *Resolver
}

// NewRanker creates a ranker over the given registry.
func NewRanker(registry *Registry) *Ranker {
	return &Ranker{
		scorer:   NewScorer(registry),
		resolver: NewResolver(registry),
	}
}

// Rank scores each day from now through horizonDays-1 and returns the
// top topK by descending score. Dates are generated in ascending
// chronological order and sorted stably, so among equal scores the
// earlier date wins.
func (r *Ranker) Rank(task model.Task, anchor model.CycleAnchor, now time.Time, horizonDays, topK int) []RankedDate {
	if horizonDays <= 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	ranked := make([]RankedDate, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		profile, _ := r.resolver.Resolve(anchor, date)
		ranked = append(ranked, RankedDate{
			Date:  date,
			Score: r.scorer.Score(task, date, anchor),
			Phase: profile.Phase,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
