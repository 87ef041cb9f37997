package usecase

import (
	"context"

	"synctracker/internal/model"
	"synctracker/internal/task"
)

// BatchSchedule ranks candidate dates for each task without committing
// any of them. Invalid tasks fail the whole batch so the caller can fix
// its input instead of getting a partial answer.
func (uc *implUseCase) BatchSchedule(ctx context.Context, sc model.Scope, input task.BatchScheduleInput) (task.BatchScheduleOutput, error) {
	if len(input.Tasks) == 0 {
		return task.BatchScheduleOutput{}, task.ErrNoTasks
	}
	for _, in := range input.Tasks {
		if err := validateScheduleInput(in); err != nil {
			return task.BatchScheduleOutput{}, err
		}
	}

	anchor, err := uc.anchors.GetAnchor(ctx, sc.UserID)
	if err != nil {
		return task.BatchScheduleOutput{}, err
	}

	now := uc.now()
	suggestions := make([]task.TaskSuggestion, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		t := model.Task{
			Title:           in.Title,
			Category:        in.Category,
			DurationMinutes: in.DurationMinutes,
			Priority:        in.Priority,
		}
		suggestions = append(suggestions, task.TaskSuggestion{
			Title:    in.Title,
			Category: in.Category,
			Dates:    uc.ranker.Rank(t, anchor, now, uc.horizonDays(), input.TopK),
		})
	}

	return task.BatchScheduleOutput{Suggestions: suggestions}, nil
}
