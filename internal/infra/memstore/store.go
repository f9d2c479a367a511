// Package memstore is a process-local keyed store with idle expiry. It holds
// wizard sessions and the caches in front of the marketplace API.
package memstore

import (
	"sync"
	"time"

	"estate-booking/internal/pkg/clock"
)

type entry[V any] struct {
	value    V
	lastSeen time.Time
}

type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*entry[V]
	ttl   time.Duration
	clock clock.Clock
}

// New returns a store whose entries expire after ttl without access.
// A zero ttl disables expiry.
func New[K comparable, V any](ttl time.Duration, clk clock.Clock) *Store[K, V] {
	return &Store[K, V]{
		items: make(map[K]*entry[V]),
		ttl:   ttl,
		clock: clk,
	}
}

// Put inserts or replaces the value for key.
func (s *Store[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = &entry[V]{value: value, lastSeen: s.clock.Now()}
}

// Get returns the value and refreshes its idle timer. Expired entries are
// reported as missing even before the next sweep.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero V
	e, ok := s.items[key]
	if !ok {
		return zero, false
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		return zero, false
	}
	e.lastSeen = now
	return e.value, true
}

// Peek is Get without refreshing the idle timer.
func (s *Store[K, V]) Peek(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero V
	e, ok := s.items[key]
	if !ok || s.expired(e, s.clock.Now()) {
		return zero, false
	}
	return e.value, true
}

func (s *Store[K, V]) Delete(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(s.items, key)
	return e.value, true
}

func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Sweep removes and returns every expired value.
func (s *Store[K, V]) Sweep() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	var out []V
	for k, e := range s.items {
		if s.expired(e, now) {
			out = append(out, e.value)
			delete(s.items, k)
		}
	}
	return out
}

func (s *Store[K, V]) expired(e *entry[V], now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}
