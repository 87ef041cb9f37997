package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"synctracker/internal/cycle"
	"synctracker/internal/model"
	"synctracker/pkg/log"
	"synctracker/pkg/sqlitedb"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

var _ log.Logger = nopLogger{}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitedb.Open(sqlitedb.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAnchorRoundTrip(t *testing.T) {
	repo, err := New(openTestDB(t), nopLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	anchor, err := model.NewCycleAnchor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28, 5)
	if err != nil {
		t.Fatalf("NewCycleAnchor: %v", err)
	}
	if err := repo.UpsertAnchor(ctx, "u1", anchor); err != nil {
		t.Fatalf("UpsertAnchor: %v", err)
	}

	// Bypass the cache to prove the row is really there.
	repo.cache.Purge()
	got, err := repo.GetAnchor(ctx, "u1")
	if err != nil {
		t.Fatalf("GetAnchor: %v", err)
	}
	if !got.AnchorDate.Equal(anchor.AnchorDate) || got.CycleLength != 28 || got.PeriodLength != 5 {
		t.Errorf("got %+v, want %+v", got, anchor)
	}
}

func TestAnchorReplacedWholesale(t *testing.T) {
	repo, err := New(openTestDB(t), nopLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	first, _ := model.NewCycleAnchor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 28, 5)
	if err := repo.UpsertAnchor(ctx, "u1", first); err != nil {
		t.Fatalf("UpsertAnchor: %v", err)
	}
	second, _ := model.NewCycleAnchor(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 30, 4)
	if err := repo.UpsertAnchor(ctx, "u1", second); err != nil {
		t.Fatalf("UpsertAnchor: %v", err)
	}

	repo.cache.Purge()
	got, err := repo.GetAnchor(ctx, "u1")
	if err != nil {
		t.Fatalf("GetAnchor: %v", err)
	}
	if got.CycleLength != 30 || got.PeriodLength != 4 {
		t.Errorf("anchor not replaced: %+v", got)
	}

	ids, err := repo.ListUserIDs(ctx)
	if err != nil {
		t.Fatalf("ListUserIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "u1" {
		t.Errorf("ListUserIDs = %v, want [u1]", ids)
	}
}

func TestGetAnchorMissing(t *testing.T) {
	repo, err := New(openTestDB(t), nopLogger{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = repo.GetAnchor(context.Background(), "nobody")
	if !errors.Is(err, cycle.ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
}
