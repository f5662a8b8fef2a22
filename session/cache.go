// Package session is the persistence adapter: a generic key-value cache with
// in-memory and SQLite backends, wrapped by a namespaced store that stamps
// every record with a save time and enforces an age window at read time.
// Persistence here is a best-effort resume cache, never a source of truth.
package session

import (
	"context"
	"sync"
)

// Cache is the raw backend contract. Get reports a miss (not an error) for
// absent or undecodable records.
type Cache[S any] interface {
	Set(ctx context.Context, key string, val S) error
	Get(ctx context.Context, key string) (S, bool, error)
	Del(ctx context.Context, key string) error
}

// MemoryCache is the in-process backend used in tests and single-run tools.
type MemoryCache[S any] struct {
	mu sync.RWMutex
	m  map[string]S
}

func NewMemoryCache[S any]() *MemoryCache[S] {
	return &MemoryCache[S]{m: map[string]S{}}
}

func (m *MemoryCache[S]) Set(ctx context.Context, key string, val S) error {
	m.mu.Lock()
	m.m[key] = val
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	m.mu.RLock()
	val, ok := m.m[key]
	m.mu.RUnlock()
	return val, ok, nil
}

func (m *MemoryCache[S]) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}
