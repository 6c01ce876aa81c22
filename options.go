package loadz

import (
	"context"
	"time"

	"github.com/zoobzio/pipz"
)

// Option configures the processing pipeline around a Fetcher's producer.
// Pipeline options wrap the producer with middleware for retry, timeout,
// circuit breaking, fallback data and other reliability patterns.
//
// Instance configuration (initial value, callbacks, sync mode, etc.) is
// handled via chainable methods on the Fetcher before calling Attach().
type Option[T any] func(pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]]

// buildPipeline wraps a terminal with pipeline options, first option
// innermost.
func buildPipeline[T any](terminal pipz.Chainable[*Call[T]], opts []Option[T]) pipz.Chainable[*Call[T]] {
	pipeline := terminal
	for _, opt := range opts {
		pipeline = opt(pipeline)
	}
	return pipeline
}

// -----------------------------------------------------------------------------
// Pipeline Options - Wrapping (With*)
// -----------------------------------------------------------------------------

// WithRetry retries a failed producer immediately, up to maxAttempts calls
// in total.
func WithRetry[T any](maxAttempts int) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewRetry(retryID, p, maxAttempts)
	}
}

// WithBackoff retries a failed producer with delays of baseDelay,
// 2*baseDelay, 4*baseDelay and so on.
func WithBackoff[T any](maxAttempts int, baseDelay time.Duration) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewBackoff(backoffID, p, maxAttempts, baseDelay)
	}
}

// WithTimeout fails the run when the producer takes longer than d. The
// producer sees the deadline on its context.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewTimeout(timeoutID, p, d)
	}
}

// WithRateLimit admits at most rate runs per second with bursts of up to
// burst. A run over the limit waits for a token or for its context.
func WithRateLimit[T any](rate float64, burst int) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewRateLimiter(rateLimitID, rate, burst, p)
	}
}

// WithFallback tries each fallback processor in order when the wrapped
// pipeline fails.
func WithFallback[T any](fallbacks ...pipz.Chainable[*Call[T]]) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		all := append([]pipz.Chainable[*Call[T]]{p}, fallbacks...)
		return pipz.NewFallback(fallbackID, all...)
	}
}

// WithFallbackValue serves v as a successful result when the wrapped
// pipeline fails. The failure is not recorded on the store.
func WithFallbackValue[T any](v T) Option[T] {
	static := pipz.Transform(fallbackValueID, func(_ context.Context, c *Call[T]) *Call[T] {
		c.Value = v
		return c
	})
	return WithFallback(static)
}

// WithCircuitBreaker rejects runs for recovery after failures consecutive
// failures, then lets a single trial run through.
func WithCircuitBreaker[T any](failures int, recovery time.Duration) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewCircuitBreaker(breakerID, p, failures, recovery)
	}
}

// WithErrorHandler passes pipeline errors to handler for logging or
// alerting. The error still fails the run.
func WithErrorHandler[T any](handler pipz.Chainable[*pipz.Error[*Call[T]]]) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		return pipz.NewHandle(errorHandlerID, p, handler)
	}
}

// WithMiddleware runs processors in order before the wrapped pipeline.
//
// Example:
//
//	loadz.NewFetcher[[]content.Class](
//	    "classes",
//	    client.Classes,
//	    loadz.WithMiddleware(
//	        loadz.UseEffect[[]content.Class](auditID, audit),
//	    ),
//	    loadz.WithRateLimit[[]content.Class](10, 5),
//	)
func WithMiddleware[T any](processors ...pipz.Chainable[*Call[T]]) Option[T] {
	return func(p pipz.Chainable[*Call[T]]) pipz.Chainable[*Call[T]] {
		all := make([]pipz.Chainable[*Call[T]], 0, len(processors)+1)
		all = append(all, processors...)
		all = append(all, p)
		return pipz.NewSequence(middlewareID, all...)
	}
}

// -----------------------------------------------------------------------------
// Middleware Processors (Use*)
// -----------------------------------------------------------------------------

// UseTransform creates a processor that rewrites the call and cannot fail.
func UseTransform[T any](id pipz.Identity, fn func(context.Context, *Call[T]) *Call[T]) pipz.Chainable[*Call[T]] {
	return pipz.Transform(id, fn)
}

// UseApply creates a processor that can rewrite the call or fail it.
func UseApply[T any](id pipz.Identity, fn func(context.Context, *Call[T]) (*Call[T], error)) pipz.Chainable[*Call[T]] {
	return pipz.Apply(id, fn)
}

// UseEffect creates a processor that performs a side effect and passes
// the call through unchanged.
func UseEffect[T any](id pipz.Identity, fn func(context.Context, *Call[T]) error) pipz.Chainable[*Call[T]] {
	return pipz.Effect(id, fn)
}

