package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
)

// UpsertAnchor stores or replaces the user's cycle anchor atomically and
// refreshes the cache entry.
func (r *implRepository) UpsertAnchor(ctx context.Context, userID string, anchor model.CycleAnchor) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cycle_anchors(user_id, anchor_date, cycle_length, period_length, created_at, updated_at)
		 VALUES(?,?,?,?,?,?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   anchor_date=excluded.anchor_date,
		   cycle_length=excluded.cycle_length,
		   period_length=excluded.period_length,
		   updated_at=excluded.updated_at`,
		userID,
		anchor.AnchorDate.Format(time.RFC3339),
		anchor.CycleLength,
		anchor.PeriodLength,
		anchor.CreatedAt.Format(time.RFC3339),
		anchor.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert cycle anchor: %w", err)
	}

	r.cache.Add(userID, anchor)
	return nil
}

// GetAnchor loads the user's anchor, serving repeated reads from cache.
func (r *implRepository) GetAnchor(ctx context.Context, userID string) (model.CycleAnchor, error) {
	if anchor, ok := r.cache.Get(userID); ok {
		return anchor, nil
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT anchor_date, cycle_length, period_length, created_at, updated_at
		 FROM cycle_anchors WHERE user_id = ?`, userID)

	var anchorDate, createdAt, updatedAt string
	var anchor model.CycleAnchor
	err := row.Scan(&anchorDate, &anchor.CycleLength, &anchor.PeriodLength, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CycleAnchor{}, cycle.ErrAnchorNotFound
	}
	if err != nil {
		return model.CycleAnchor{}, fmt.Errorf("query cycle anchor: %w", err)
	}

	if anchor.AnchorDate, err = time.Parse(time.RFC3339, anchorDate); err != nil {
		return model.CycleAnchor{}, fmt.Errorf("parse anchor date: %w", err)
	}
	if anchor.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.CycleAnchor{}, fmt.Errorf("parse created_at: %w", err)
	}
	if anchor.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return model.CycleAnchor{}, fmt.Errorf("parse updated_at: %w", err)
	}

	r.cache.Add(userID, anchor)
	return anchor, nil
}

// ListUserIDs returns every user with a stored anchor.
func (r *implRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM cycle_anchors ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("list anchor users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan anchor user: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
