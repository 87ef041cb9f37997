package repository

import (
	"context"

	"synctracker/internal/model"
)

// TaskRepository is the interface for task data access operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, userID string, task model.Task) error
	GetTask(ctx context.Context, userID, taskID string) (model.Task, error)
	ListTasks(ctx context.Context, userID string, opt ListTasksOptions) ([]model.Task, error)
	MarkCompleted(ctx context.Context, userID, taskID string) (model.Task, error)
}
