package sqlite

import (
	"database/sql"

	lru "github.com/hashicorp/golang-lru/v2"

	"synctracker/internal/model"
	"synctracker/pkg/log"
)

// anchorCacheSize bounds the read-through anchor cache. Anchors are tiny
// and read on every scheduling request, so caching them avoids a query
// per call.
const anchorCacheSize = 1024

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	cache *lru.Cache[string, model.CycleAnchor]
}

// New creates a SQLite-backed anchor repository with an LRU read cache.
func New(db *sql.DB, l log.Logger) (*implRepository, error) {
	cache, err := lru.New[string, model.CycleAnchor](anchorCacheSize)
	if err != nil {
		return nil, err
	}
	return &implRepository{
		db:    db,
		l:     l,
		cache: cache,
	}, nil
}
