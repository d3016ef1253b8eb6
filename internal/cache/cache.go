// Package cache defines the process-wide TTL key-value store used by the
// keyword-result cache and the rate-limit window tracker. The interface
// matches the Fiber storage contract so the Redis-backed implementation
// is a drop-in for the in-memory one.
package cache

import (
	"sync"
	"time"
)

// Store is a key-value store with per-key TTL. A missing or expired key
// returns (nil, nil). Concurrent writers for the same key may race;
// last-write-wins is acceptable because values are deterministic given
// the key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, ttl time.Duration) error
	Delete(key string) error
}

type entry struct {
	val     []byte
	expires time.Time
}

// Memory is an in-process Store. Eviction is time-based only: a stale
// entry is dropped when the next read or write touches its key, there is
// no active sweep.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]entry)}
}

// Get returns the value for key, or (nil, nil) when absent or expired.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, nil
	}
	return e.val, nil
}

// Set stores val under key. A zero ttl means no expiry.
func (m *Memory) Set(key string, val []byte, ttl time.Duration) error {
	e := entry{val: val}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
