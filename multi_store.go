package loadz

import (
	"maps"
	"sync"
)

// MultiStore tracks loading and error flags for independently keyed
// operations, such as the sections of a page that load in parallel.
type MultiStore[K comparable] struct {
	mu      sync.RWMutex
	initial map[K]bool
	loading map[K]bool
	errors  map[K]error
}

// NewMultiStore creates a MultiStore seeded with initial loading flags.
// The map is copied; later changes to it have no effect.
func NewMultiStore[K comparable](initial map[K]bool) *MultiStore[K] {
	seed := maps.Clone(initial)
	if seed == nil {
		seed = make(map[K]bool)
	}
	return &MultiStore[K]{
		initial: seed,
		loading: maps.Clone(seed),
		errors:  make(map[K]error),
	}
}

// SetLoading sets the loading flag for key, leaving other keys untouched.
func (m *MultiStore[K]) SetLoading(key K, loading bool) {
	m.mu.Lock()
	m.loading[key] = loading
	m.mu.Unlock()
}

// SetError records err for key. A nil err clears it.
func (m *MultiStore[K]) SetError(key K, err error) {
	m.mu.Lock()
	if err == nil {
		delete(m.errors, key)
	} else {
		m.errors[key] = err
	}
	m.mu.Unlock()
}

// ResetAll restores the construction-time loading flags and clears every
// error.
func (m *MultiStore[K]) ResetAll() {
	m.mu.Lock()
	m.loading = maps.Clone(m.initial)
	m.errors = make(map[K]error)
	m.mu.Unlock()
}

// IsLoading reports the loading flag for key.
func (m *MultiStore[K]) IsLoading(key K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading[key]
}

// Err returns the error recorded for key, or nil.
func (m *MultiStore[K]) Err(key K) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errors[key]
}

// IsAnyLoading reports whether any key is loading.
func (m *MultiStore[K]) IsAnyLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.loading {
		if v {
			return true
		}
	}
	return false
}

// HasAnyError reports whether any key has an error.
func (m *MultiStore[K]) HasAnyError() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.errors) > 0
}

// Loading returns a copy of the loading flags.
func (m *MultiStore[K]) Loading() map[K]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.loading)
}

// Errors returns a copy of the recorded errors.
func (m *MultiStore[K]) Errors() map[K]error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.errors)
}
