package repository

import "synctracker/internal/model"

// ListTasksOptions holds the parameters for listing stored tasks.
type ListTasksOptions struct {
	Category         model.TaskCategory // Filter by category (optional)
	IncludeCompleted bool               // Include completed tasks
	Limit            int                // Max number of results (default 50)
}
