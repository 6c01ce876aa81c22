package loadz

import "github.com/zoobzio/capitan"

// Fetcher lifecycle signals.
var (
	// FetcherAttached is emitted when a Fetcher is attached to its owner.
	FetcherAttached = capitan.NewSignal(
		"loadz.fetcher.attached",
		"Fetcher attached to owner context",
	)

	// FetcherReset is emitted when a Fetcher is reset to its initial state.
	FetcherReset = capitan.NewSignal(
		"loadz.fetcher.reset",
		"Fetcher reset to initial state",
	)

	// FetcherRefreshStarted is emitted when a RefreshOn loop begins.
	FetcherRefreshStarted = capitan.NewSignal(
		"loadz.fetcher.refresh.started",
		"Fetcher refresh loop started",
	)

	// FetcherRefreshStopped is emitted when a RefreshOn loop ends.
	FetcherRefreshStopped = capitan.NewSignal(
		"loadz.fetcher.refresh.stopped",
		"Fetcher refresh loop stopped",
	)
)

// Run signals.
var (
	// RunStarted is emitted when a run begins.
	RunStarted = capitan.NewSignal(
		"loadz.run.started",
		"Producer run started",
	)

	// RunSucceeded is emitted when the producer returns a value.
	RunSucceeded = capitan.NewSignal(
		"loadz.run.succeeded",
		"Producer run succeeded",
	)

	// RunFailed is emitted when the producer fails.
	RunFailed = capitan.NewSignal(
		"loadz.run.failed",
		"Producer run failed",
	)

	// RunTriggered is emitted when a watcher change schedules a run.
	RunTriggered = capitan.NewSignal(
		"loadz.run.triggered",
		"Run triggered by watcher change",
	)
)
