package loadz

import "sync"

// Store tracks the lifecycle of a single asynchronous operation: whether a
// run is in flight, the error recorded by the last failed run, and the
// last good value.
//
// Keeping these apart lets a consumer render stale data alongside a fresh
// error. A Store is safe for concurrent use.
type Store[T any] struct {
	mu sync.RWMutex

	initial    T
	hasInitial bool

	value   T
	present bool
	pending bool
	err     error

	history *errorRing
}

// NewStore creates a Store with no initial value. Value reports false
// until the first SetValue.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// NewStoreWithValue creates a Store whose initial value is v. Reset
// restores v.
func NewStoreWithValue[T any](v T) *Store[T] {
	return &Store[T]{
		initial:    v,
		hasInitial: true,
		value:      v,
		present:    true,
	}
}

// seed replaces the initial value and the current one with v.
func (s *Store[T]) seed(v T) {
	s.mu.Lock()
	s.initial, s.hasInitial = v, true
	s.value, s.present = v, true
	s.mu.Unlock()
}

// ErrorHistorySize sets the number of recent errors to retain.
// Use 0 (default) to only retain the most recent error via Err().
// Must be called before the store is shared.
func (s *Store[T]) ErrorHistorySize(n int) *Store[T] {
	s.history = newErrorRing(n)
	return s
}

// StartLoading marks a run as in flight and clears the last error.
func (s *Store[T]) StartLoading() {
	s.mu.Lock()
	s.pending = true
	s.err = nil
	s.mu.Unlock()
}

// StopLoading marks the run as finished. A non-nil err is recorded as the
// last error; the value is never touched.
func (s *Store[T]) StopLoading(err error) {
	s.mu.Lock()
	s.pending = false
	if err != nil {
		s.err = err
	}
	s.mu.Unlock()

	s.history.push(err)
}

// SetValue records v as the last good value. Pending and error state are
// unaffected. The error history is cleared.
func (s *Store[T]) SetValue(v T) {
	s.mu.Lock()
	s.value = v
	s.present = true
	s.mu.Unlock()

	s.history.clear()
}

// Reset returns the store to its construction-time state.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.pending = false
	s.err = nil
	s.value = s.initial
	s.present = s.hasInitial
	s.mu.Unlock()

	s.history.clear()
}

// Value returns the last good value and true, or the zero value and false
// if none has been set.
func (s *Store[T]) Value() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.present
}

// Loading reports whether a run is in flight.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Err returns the last recorded error, or nil.
func (s *Store[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// HasError reports whether an error is recorded.
func (s *Store[T]) HasError() bool {
	return s.Err() != nil
}

// ErrorHistory returns the recent error history, oldest first.
// Returns nil if error history is not enabled.
func (s *Store[T]) ErrorHistory() []error {
	return s.history.all()
}

// Snapshot returns a consistent copy of the store.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{
		Value:   s.value,
		Present: s.present,
		Loading: s.pending,
		Err:     s.err,
	}
}
