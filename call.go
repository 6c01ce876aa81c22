package loadz

import (
	"context"
	"errors"
	"fmt"

	"github.com/zoobzio/pipz"
)

// Producer is the operation a Fetcher tracks. It should honor ctx.
type Producer[T any] func(ctx context.Context) (T, error)

// Call carries one producer invocation through the processing pipeline.
// Middleware may inspect or replace Value after the producer has run.
type Call[T any] struct {
	// Name is the name of the Fetcher that started the call.
	Name string

	// Value is the produced value. It is the zero value until the
	// producer stage returns.
	Value T
}

// Pipeline identities.
var (
	produceID       = pipz.NewIdentity("loadz:produce", "Invokes the fetcher producer")
	retryID         = pipz.NewIdentity("loadz:retry", "Retries failed producer calls")
	backoffID       = pipz.NewIdentity("loadz:backoff", "Retries with exponential backoff")
	timeoutID       = pipz.NewIdentity("loadz:timeout", "Bounds producer duration")
	fallbackID      = pipz.NewIdentity("loadz:fallback", "Falls back to alternate processors")
	fallbackValueID = pipz.NewIdentity("loadz:fallback-value", "Substitutes static fallback data")
	breakerID       = pipz.NewIdentity("loadz:circuit-breaker", "Rejects calls after repeated failures")
	errorHandlerID  = pipz.NewIdentity("loadz:error-handler", "Observes pipeline errors")
	middlewareID    = pipz.NewIdentity("loadz:middleware", "Runs middleware before the producer")
	rateLimitID     = pipz.NewIdentity("loadz:rate-limiter", "Limits producer call rate")
)

// ErrProducerPanic wraps the value of a panic raised by a producer.
var ErrProducerPanic = errors.New("producer panicked")

// terminal adapts a Producer into the final pipeline stage.
func terminal[T any](producer Producer[T]) pipz.Chainable[*Call[T]] {
	return pipz.Apply(produceID, func(ctx context.Context, c *Call[T]) (*Call[T], error) {
		v, err := invoke(ctx, producer)
		if err != nil {
			return c, err
		}
		c.Value = v
		return c, nil
	})
}

// invoke calls producer, converting a panic into an error.
func invoke[T any](ctx context.Context, producer Producer[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProducerPanic, r)
		}
	}()
	return producer(ctx)
}

// cause strips pipeline error wrappers so the store records the
// producer's own error.
func cause[T any](err error) error {
	for {
		var perr *pipz.Error[*Call[T]]
		if !errors.As(err, &perr) || perr.Err == nil || perr.Err == err {
			return err
		}
		err = perr.Err
	}
}
