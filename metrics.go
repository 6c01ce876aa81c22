package loadz

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on fetcher runs.
type MetricsProvider interface {
	// OnRunStarted is called when a run begins.
	OnRunStarted()

	// OnRunSucceeded is called when the producer returns a value.
	OnRunSucceeded(duration time.Duration)

	// OnRunFailed is called when the producer fails.
	OnRunFailed(duration time.Duration)

	// OnReset is called when the fetcher is reset.
	OnReset()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnRunStarted()                {}
func (NoOpMetricsProvider) OnRunSucceeded(time.Duration) {}
func (NoOpMetricsProvider) OnRunFailed(time.Duration)    {}
func (NoOpMetricsProvider) OnReset()                     {}
