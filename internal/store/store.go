// Package store keeps finished simulation runs so their ledgers can be fetched later by ID.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"inventory-release/internal/backtest"
	"inventory-release/internal/config"
)

const defaultRunTTL = time.Hour

// Run is a finished simulation as returned by the API.
type Run struct {
	ID        string           `json:"id"`
	Scenario  string           `json:"scenario"`
	CreatedAt time.Time        `json:"created_at"`
	Result    *backtest.Result `json:"result"`
}

type RunStore interface {
	// Save assigns an ID when run.ID is empty and returns it.
	Save(ctx context.Context, run *Run) (string, error)
	Get(ctx context.Context, id string) (*Run, bool, error)
}

// New picks Redis when caching is enabled and falls back to memory otherwise.
func New(cfg config.CacheConfig) (RunStore, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultRunTTL
	}
	if !cfg.Enabled {
		return NewMemoryStore(ttl), nil
	}
	return NewRedisStore(cfg, ttl)
}

func prepare(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}
