package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"synctracker/internal/model"
	"synctracker/internal/task"
	"synctracker/internal/task/repository"
)

const defaultListLimit = 50

// CreateTask inserts a new task row for the user.
func (r *implRepository) CreateTask(ctx context.Context, userID string, t model.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks(id, user_id, title, description, category, duration_minutes,
		   priority, deadline, created_at, scheduled_at, calendar_event_id, completed)
		 VALUES(?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.ID,
		userID,
		t.Title,
		t.Description,
		string(t.Category),
		t.DurationMinutes,
		t.Priority,
		nullableTime(t.Deadline),
		t.CreatedAt.Format(time.RFC3339),
		nullableTime(t.ScheduledAt),
		t.CalendarEventID,
		boolToInt(t.Completed),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetTask loads one task owned by the user.
func (r *implRepository) GetTask(ctx context.Context, userID, taskID string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE user_id = ? AND id = ?`, userID, taskID)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("query task: %w", err)
	}
	return t, nil
}

// ListTasks returns the user's tasks, most recent first.
func (r *implRepository) ListTasks(ctx context.Context, userID string, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := selectColumns + ` WHERE user_id = ?`
	args := []any{userID}
	if opt.Category != "" {
		query += ` AND category = ?`
		args = append(args, string(opt.Category))
	}
	if !opt.IncludeCompleted {
		query += ` AND completed = 0`
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkCompleted flips the completed flag and returns the updated task.
func (r *implRepository) MarkCompleted(ctx context.Context, userID, taskID string) (model.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = 1 WHERE user_id = ? AND id = ?`, userID, taskID)
	if err != nil {
		return model.Task{}, fmt.Errorf("complete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, fmt.Errorf("complete task: %w", err)
	}
	if affected == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	return r.GetTask(ctx, userID, taskID)
}

const selectColumns = `SELECT id, title, description, category, duration_minutes,
	priority, deadline, created_at, scheduled_at, calendar_event_id, completed
	FROM tasks`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var category, createdAt string
	var deadline, scheduledAt sql.NullString
	var completed int

	err := row.Scan(&t.ID, &t.Title, &t.Description, &category, &t.DurationMinutes,
		&t.Priority, &deadline, &createdAt, &scheduledAt, &t.CalendarEventID, &completed)
	if err != nil {
		return model.Task{}, err
	}

	t.Category = model.TaskCategory(category)
	t.Completed = completed != 0
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if t.Deadline, err = parseNullableTime(deadline); err != nil {
		return model.Task{}, fmt.Errorf("parse deadline: %w", err)
	}
	if t.ScheduledAt, err = parseNullableTime(scheduledAt); err != nil {
		return model.Task{}, fmt.Errorf("parse scheduled_at: %w", err)
	}
	return t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
