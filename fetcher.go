package loadz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"
	"golang.org/x/sync/singleflight"
)

// DefaultDebounce is the default debounce duration for RefreshOn.
const DefaultDebounce = 100 * time.Millisecond

// ErrAlreadyAttached is returned by Attach on its second call.
var ErrAlreadyAttached = errors.New("fetcher already attached")

// ErrCallbackPanic wraps the value of a panic raised by OnSuccess or OnError.
var ErrCallbackPanic = errors.New("callback panicked")

// Fetcher wraps a Producer with a Store. It runs the producer once when
// attached to its owner (unless Manual), on demand via Run, and whenever
// a watcher passed to RefreshOn emits.
//
// Producer failures never escape a Fetcher: they are recorded on the store
// and passed to the OnError callback. Callers that ignore Err() see a
// failed run as "no data yet", so producers are usually paired with
// fallback data.
type Fetcher[T any] struct {
	name     string
	pipeline pipz.Chainable[*Call[T]]
	store    *Store[T]

	autoRun      bool
	syncMode     bool
	singleFlight bool
	debounce     time.Duration
	clock        clockz.Clock
	metrics      MetricsProvider
	onSuccess    func(T)
	onError      func(error)

	group singleflight.Group

	mu       sync.Mutex
	attached bool
}

// outcome is what a single-flight run shares with its waiters.
type outcome[T any] struct {
	value T
	ok    bool
}

// NewFetcher creates a Fetcher named name around producer.
//
// Pipeline options (With*) wrap the producer. Instance configuration uses
// chainable methods before calling Attach().
//
// Example:
//
//	classes := loadz.NewFetcher("classes", client.Classes,
//	    loadz.WithTimeout[[]content.Class](5*time.Second),
//	).OnError(func(err error) {
//	    log.Printf("classes: %v", err)
//	})
//
//	if err := classes.Attach(ctx); err != nil {
//	    return err
//	}
func NewFetcher[T any](name string, producer Producer[T], opts ...Option[T]) *Fetcher[T] {
	return &Fetcher[T]{
		name:     name,
		pipeline: buildPipeline(terminal(producer), opts),
		store:    NewStore[T](),
		autoRun:  true,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
	}
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Initial sets the value present before the first run and restored by
// Reset. Must be called before Attach().
func (f *Fetcher[T]) Initial(v T) *Fetcher[T] {
	f.store.seed(v)
	return f
}

// Manual disables the run Attach() would otherwise start.
func (f *Fetcher[T]) Manual() *Fetcher[T] {
	f.autoRun = false
	return f
}

// OnSuccess sets a callback invoked with each produced value.
func (f *Fetcher[T]) OnSuccess(fn func(T)) *Fetcher[T] {
	f.onSuccess = fn
	return f
}

// OnError sets a callback invoked with each producer error. It runs before
// the store leaves the loading state, so Err() still reports nil inside it.
func (f *Fetcher[T]) OnError(fn func(error)) *Fetcher[T] {
	f.onError = fn
	return f
}

// SyncMode makes Attach() run the initial fetch before returning instead
// of in a goroutine, making tests deterministic. Must be called before
// Attach().
func (f *Fetcher[T]) SyncMode() *Fetcher[T] {
	f.syncMode = true
	return f
}

// SingleFlight coalesces overlapping runs into one producer call whose
// outcome every caller receives. Without it, overlapping runs race and
// the producer that returns last decides the stored value.
func (f *Fetcher[T]) SingleFlight() *Fetcher[T] {
	f.singleFlight = true
	return f
}

// Debounce sets how long RefreshOn waits for changes to settle before
// running. Zero runs on every change. Default: 100ms.
func (f *Fetcher[T]) Debounce(d time.Duration) *Fetcher[T] {
	f.debounce = d
	return f
}

// Clock sets a custom clock for durations and debounce timers.
// Use this with clockz.FakeClock for deterministic testing.
func (f *Fetcher[T]) Clock(clock clockz.Clock) *Fetcher[T] {
	f.clock = clock
	return f
}

// Metrics sets a metrics provider for observability integration.
func (f *Fetcher[T]) Metrics(provider MetricsProvider) *Fetcher[T] {
	f.metrics = provider
	return f
}

// ErrorHistorySize sets the number of recent errors to retain.
// Must be called before Attach().
func (f *Fetcher[T]) ErrorHistorySize(n int) *Fetcher[T] {
	f.store.ErrorHistorySize(n)
	return f
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Attach binds the fetcher to its owner. Unless Manual was set, it starts
// one run: in a goroutine by default, before returning in sync mode.
// The run uses ctx. Attach can only be called once.
func (f *Fetcher[T]) Attach(ctx context.Context) error {
	f.mu.Lock()
	if f.attached {
		f.mu.Unlock()
		return ErrAlreadyAttached
	}
	f.attached = true
	f.mu.Unlock()

	capitan.Emit(ctx, FetcherAttached, KeyName.Field(f.name))

	if !f.autoRun {
		return nil
	}
	if f.syncMode {
		f.Run(ctx)
		return nil
	}
	go f.Run(ctx)
	return nil
}

// Run invokes the producer and records the outcome. It returns the value
// and true on success, or the zero value and false on failure; the error
// itself is only available through Err() and the OnError callback.
//
// Run is safe to call while another run is in flight.
func (f *Fetcher[T]) Run(ctx context.Context) (T, bool) {
	if !f.singleFlight {
		return f.run(ctx)
	}
	shared, _, _ := f.group.Do(f.name, func() (any, error) {
		v, ok := f.run(ctx)
		return outcome[T]{value: v, ok: ok}, nil
	})
	o := shared.(outcome[T])
	return o.value, o.ok
}

func (f *Fetcher[T]) run(ctx context.Context) (T, bool) {
	start := f.clock.Now()
	f.store.StartLoading()
	capitan.Emit(ctx, RunStarted, KeyName.Field(f.name))
	if f.metrics != nil {
		f.metrics.OnRunStarted()
	}

	v, err := f.attempt(ctx)
	elapsed := f.clock.Since(start)
	state := KeyState.Field(f.store.Snapshot().State().String())

	if err != nil {
		capitan.Emit(ctx, RunFailed,
			KeyName.Field(f.name),
			state,
			KeyError.Field(err.Error()),
			KeyDuration.Field(elapsed),
		)
		if f.metrics != nil {
			f.metrics.OnRunFailed(elapsed)
		}
		var zero T
		return zero, false
	}

	capitan.Emit(ctx, RunSucceeded,
		KeyName.Field(f.name),
		state,
		KeyDuration.Field(elapsed),
	)
	if f.metrics != nil {
		f.metrics.OnRunSucceeded(elapsed)
	}
	return v, true
}

// attempt runs the pipeline and the matching callback, then leaves the
// loading state exactly once. A callback panic is recorded as the run's
// error.
func (f *Fetcher[T]) attempt(ctx context.Context) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(err, fmt.Errorf("%w: %v", ErrCallbackPanic, r))
		}
		f.store.StopLoading(err)
	}()

	call, err := f.pipeline.Process(ctx, &Call[T]{Name: f.name})
	if err != nil {
		err = cause[T](err)
		if f.onError != nil {
			f.onError(err)
		}
		return v, err
	}

	f.store.SetValue(call.Value)
	if f.onSuccess != nil {
		f.onSuccess(call.Value)
	}
	return call.Value, nil
}

// Reset restores the initial value and clears loading and error state.
// A run in flight when Reset is called still records its outcome.
func (f *Fetcher[T]) Reset() {
	f.store.Reset()
	capitan.Emit(context.Background(), FetcherReset, KeyName.Field(f.name))
	if f.metrics != nil {
		f.metrics.OnReset()
	}
}

// RefreshOn runs the fetcher each time w emits, debounced, until ctx is
// done or the watcher closes its channel. It returns once the watcher is
// started.
func (f *Fetcher[T]) RefreshOn(ctx context.Context, w Watcher) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("start refresh watcher: %w", err)
	}
	capitan.Emit(ctx, FetcherRefreshStarted,
		KeyName.Field(f.name),
		KeyWatcherType.Field(fmt.Sprintf("%T", w)),
		KeyDebounce.Field(f.debounce),
	)
	go f.refresh(ctx, changes)
	return nil
}

func (f *Fetcher[T]) refresh(ctx context.Context, changes <-chan []byte) {
	defer capitan.Emit(ctx, FetcherRefreshStopped, KeyName.Field(f.name))

	var (
		timer   clockz.Timer
		pending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case _, ok := <-changes:
			if !ok {
				if pending {
					f.Run(ctx)
				}
				return
			}
			capitan.Emit(ctx, RunTriggered, KeyName.Field(f.name))
			if f.debounce <= 0 {
				f.Run(ctx)
				continue
			}
			pending = true
			if timer == nil {
				timer = f.clock.NewTimer(f.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(f.debounce)
			}

		case <-timerC:
			if pending {
				pending = false
				f.Run(ctx)
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Reads
// -----------------------------------------------------------------------------

// Name returns the fetcher name.
func (f *Fetcher[T]) Name() string {
	return f.name
}

// Snapshot returns a consistent copy of the fetcher state.
func (f *Fetcher[T]) Snapshot() Snapshot[T] {
	return f.store.Snapshot()
}

// State returns the summary state of the fetcher.
func (f *Fetcher[T]) State() State {
	return f.store.Snapshot().State()
}

// Value returns the last good value and true, or the zero value and false.
func (f *Fetcher[T]) Value() (T, bool) {
	return f.store.Value()
}

// Loading reports whether a run is in flight.
func (f *Fetcher[T]) Loading() bool {
	return f.store.Loading()
}

// Err returns the error recorded by the last failed run, or nil.
func (f *Fetcher[T]) Err() error {
	return f.store.Err()
}

// HasError reports whether an error is recorded.
func (f *Fetcher[T]) HasError() bool {
	return f.store.HasError()
}

// ErrorHistory returns the recent error history, oldest first.
// Returns nil if error history is not enabled (see ErrorHistorySize).
func (f *Fetcher[T]) ErrorHistory() []error {
	return f.store.ErrorHistory()
}
