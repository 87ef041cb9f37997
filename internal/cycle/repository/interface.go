package repository

import (
	"context"

	"synctracker/internal/model"
)

// AnchorRepository is the interface for cycle anchor persistence.
// Anchors are replaced wholesale; there is no partial update.
type AnchorRepository interface {
	UpsertAnchor(ctx context.Context, userID string, anchor model.CycleAnchor) error
	GetAnchor(ctx context.Context, userID string) (model.CycleAnchor, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}
