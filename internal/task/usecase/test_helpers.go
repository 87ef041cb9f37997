package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
	"synctracker/internal/task"
	"synctracker/internal/task/repository"
	"synctracker/pkg/gcalendar"
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

// memoryTaskRepo is an in-memory TaskRepository for tests.
type memoryTaskRepo struct {
	mu    sync.Mutex
	tasks map[string][]model.Task // keyed by user ID, insertion order
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: make(map[string][]model.Task)}
}

func (r *memoryTaskRepo) CreateTask(_ context.Context, userID string, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[userID] = append(r.tasks[userID], t)
	return nil
}

func (r *memoryTaskRepo) GetTask(_ context.Context, userID, taskID string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks[userID] {
		if t.ID == taskID {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (r *memoryTaskRepo) ListTasks(_ context.Context, userID string, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks[userID] {
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if !opt.IncludeCompleted && t.Completed {
			continue
		}
		out = append(out, t)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func (r *memoryTaskRepo) MarkCompleted(_ context.Context, userID, taskID string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks[userID] {
		if t.ID == taskID {
			r.tasks[userID][i].Completed = true
			return r.tasks[userID][i], nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

// stubCalendar records created events and can be forced to fail.
type stubCalendar struct {
	mu       sync.Mutex
	events   []gcalendar.CreateEventRequest
	failNext bool
	upcoming []gcalendar.Event
	deleted  []string
}

func (s *stubCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return nil, errors.New("calendar unavailable")
	}
	s.events = append(s.events, req)
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.example/evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (s *stubCalendar) UpcomingTrackedEvents(_ context.Context, _ time.Time, _ int) ([]gcalendar.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upcoming, nil
}

func (s *stubCalendar) DeleteEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, eventID)
	return nil
}
