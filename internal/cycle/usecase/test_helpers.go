package usecase

import (
	"context"
	"sync"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// memoryAnchorRepo is an in-memory AnchorRepository for tests.
type memoryAnchorRepo struct {
	mu      sync.Mutex
	anchors map[string]model.CycleAnchor
}

func newMemoryAnchorRepo() *memoryAnchorRepo {
	return &memoryAnchorRepo{anchors: make(map[string]model.CycleAnchor)}
}

func (r *memoryAnchorRepo) UpsertAnchor(_ context.Context, userID string, anchor model.CycleAnchor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.anchors[userID] = anchor
	return nil
}

func (r *memoryAnchorRepo) GetAnchor(_ context.Context, userID string) (model.CycleAnchor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	anchor, ok := r.anchors[userID]
	if !ok {
		return model.CycleAnchor{}, cycle.ErrAnchorNotFound
	}
	return anchor, nil
}

func (r *memoryAnchorRepo) ListUserIDs(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.anchors))
	for id := range r.anchors {
		ids = append(ids, id)
	}
	return ids, nil
}
