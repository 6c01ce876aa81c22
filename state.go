package loadz

// State summarizes a Snapshot for callers that only need to branch on it.
type State int32

const (
	// StateIdle indicates no run has produced a value or an error yet,
	// or the store has been reset to an absent initial value.
	StateIdle State = iota

	// StateLoading indicates a run is in flight. A value or error from a
	// previous run may still be visible alongside it.
	StateLoading

	// StateReady indicates a value is present and the last run succeeded.
	StateReady

	// StateFailed indicates the last run failed. A previously produced
	// value may still be present.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of a Store at one instant.
type Snapshot[T any] struct {
	// Value is the last successfully produced value, or the zero value
	// when Present is false.
	Value T

	// Present reports whether Value holds a produced or initial value.
	Present bool

	// Loading reports whether a run is in flight.
	Loading bool

	// Err is the error recorded by the last failed run.
	Err error
}

// HasError reports whether an error is recorded.
func (s Snapshot[T]) HasError() bool {
	return s.Err != nil
}

// State derives the summary state. Loading wins over a stale error.
func (s Snapshot[T]) State() State {
	switch {
	case s.Loading:
		return StateLoading
	case s.Err != nil:
		return StateFailed
	case s.Present:
		return StateReady
	default:
		return StateIdle
	}
}
