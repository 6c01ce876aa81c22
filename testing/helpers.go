// Package testing provides test utilities and helpers for loadz fetchers.
package testing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/zoobzio/loadz"
)

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForState waits until the fetcher reaches the expected state or timeout occurs.
func WaitForState[T any](t *testing.T, f *loadz.Fetcher[T], expected loadz.State, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return f.State() == expected
	})
}

// RequireState fails the test immediately if the fetcher is not in the expected state.
func RequireState[T any](t *testing.T, f *loadz.Fetcher[T], expected loadz.State) {
	t.Helper()
	if got := f.State(); got != expected {
		t.Fatalf("expected state %s, got %s", expected, got)
	}
}

// RequireValue fails the test if the fetcher holds no value or check rejects it.
func RequireValue[T any](t *testing.T, f *loadz.Fetcher[T], check func(T) bool) {
	t.Helper()
	v, ok := f.Value()
	if !ok {
		t.Fatal("expected value to be present, got none")
	}
	if !check(v) {
		t.Fatalf("value check failed: %+v", v)
	}
}

// RequireError fails the test unless the fetcher's error matches target.
func RequireError[T any](t *testing.T, f *loadz.Fetcher[T], target error) {
	t.Helper()
	err := f.Err()
	if err == nil {
		t.Fatalf("expected error %v, got none", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

// NewTestFetcher creates a manual, sync-mode fetcher driven by a fake clock.
func NewTestFetcher[T any](t *testing.T, producer loadz.Producer[T], opts ...loadz.Option[T]) (*loadz.Fetcher[T], *clockz.FakeClock) {
	t.Helper()
	clock := clockz.NewFakeClock()
	f := loadz.NewFetcher(t.Name(), producer, opts...).
		Manual().
		SyncMode().
		Clock(clock)
	return f, clock
}

// Counter wraps a producer and counts its invocations.
type Counter[T any] struct {
	calls    atomic.Int64
	producer loadz.Producer[T]
}

// NewCounter returns a Counter around producer.
func NewCounter[T any](producer loadz.Producer[T]) *Counter[T] {
	return &Counter[T]{producer: producer}
}

// Produce invokes the wrapped producer.
func (c *Counter[T]) Produce(ctx context.Context) (T, error) {
	c.calls.Add(1)
	return c.producer(ctx)
}

// Calls returns how many times Produce ran.
func (c *Counter[T]) Calls() int {
	return int(c.calls.Load())
}

// Gate is a producer whose calls block until released, for driving
// overlapping runs in a chosen order.
type Gate[T any] struct {
	mu      sync.Mutex
	waiting []chan result[T]
	entered chan struct{}
}

type result[T any] struct {
	value T
	err   error
}

// NewGate creates an empty Gate.
func NewGate[T any]() *Gate[T] {
	return &Gate[T]{entered: make(chan struct{}, 64)}
}

// Produce blocks until the call is released or ctx is done.
func (g *Gate[T]) Produce(ctx context.Context) (T, error) {
	ch := make(chan result[T], 1)
	g.mu.Lock()
	g.waiting = append(g.waiting, ch)
	g.mu.Unlock()
	g.entered <- struct{}{}

	select {
	case r := <-ch:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitCalls blocks until n calls have entered Produce since the last
// AwaitCalls, or timeout passes.
func (g *Gate[T]) AwaitCalls(t *testing.T, n int, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-g.entered:
		case <-deadline:
			t.Fatalf("timed out waiting for %d producer calls, got %d", n, i)
		}
	}
}

// Release completes the i-th call (in order of entry) with v and err.
func (g *Gate[T]) Release(i int, v T, err error) {
	g.mu.Lock()
	ch := g.waiting[i]
	g.mu.Unlock()
	ch <- result[T]{value: v, err: err}
}
