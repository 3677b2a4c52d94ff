package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memoryEntry struct {
	run       *Run
	expiresAt time.Time
}

// MemoryStore is an in-process RunStore with per-entry expiry.
// Runs are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultRunTTL
	}
	return &MemoryStore{
		store: make(map[string]*memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *MemoryStore) Save(_ context.Context, run *Run) (string, error) {
	if run == nil {
		return "", errors.New("run is nil")
	}
	prepare(run)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[run.ID] = &memoryEntry{run: run, expiresAt: m.now().Add(m.ttl)}
	return run.ID, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Run, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.store[id]
	if !ok || m.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.run, true, nil
}

// Len counts entries, expired ones included until the next Sweep.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Sweep removes expired entries.
func (m *MemoryStore) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
		}
	}
}

// RunJanitor sweeps on every tick until ctx is done.
func (m *MemoryStore) RunJanitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
