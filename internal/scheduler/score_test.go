package scheduler

import (
	"math"
	"testing"
	"time"

	"synctracker/internal/model"
)

func testTask(category model.TaskCategory, priority int) model.Task {
	return model.Task{
		Title:           "test task",
		Category:        category,
		DurationMinutes: 60,
		Priority:        priority,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// The weights below are policy, not physics. These cases pin the exact
// arithmetic so any retuning shows up as a deliberate test change.
func TestScore(t *testing.T) {
	r, _ := NewRegistry()
	scorer := NewScorer(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)

	tests := []struct {
		name string
		task model.Task
		date time.Time
		want float64
	}{
		{
			name: "optimal phase, priority 1",
			// Follicular day: base 0.8*0.5 + energy 0.7*0.3 + focus 0.8*0.2
			task: testTask(model.CategoryCreative, 1),
			date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: 0.8*0.5 + 0.7*0.3 + 0.8*0.2,
		},
		{
			name: "off phase, priority 1",
			// Menstrual day: base 0.3*0.5 + energy 0.3*0.3 + focus 0.6*0.2
			task: testTask(model.CategoryCreative, 1),
			date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			want: 0.3*0.5 + 0.3*0.3 + 0.6*0.2,
		},
		{
			name: "priority boost added",
			task: testTask(model.CategoryCreative, 3),
			date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: 0.8*0.5 + 0.7*0.3 + 0.8*0.2 + 0.2,
		},
		{
			name: "clamped at one",
			// Ovulatory day for social with priority 5 exceeds 1.0 raw.
			task: testTask(model.CategorySocial, 5),
			date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: 1.0,
		},
		{
			name: "unknown category is neutral",
			task: testTask(model.TaskCategory("juggling"), 5),
			date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.task, tt.date, anchor)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	r, _ := NewRegistry()
	scorer := NewScorer(r)
	anchor := testAnchor(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28)
	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC) // includes pre-anchor dates

	for _, category := range model.Categories {
		for priority := model.MinPriority; priority <= model.MaxPriority; priority++ {
			for day := 0; day < 60; day++ {
				date := start.AddDate(0, 0, day)
				score := scorer.Score(testTask(category, priority), date, anchor)
				if score < 0.0 || score > 1.0 {
					t.Fatalf("score %v out of [0,1] for %s priority %d on %s",
						score, category, priority, date.Format("2006-01-02"))
				}
			}
		}
	}
}
