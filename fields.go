package loadz

import "github.com/zoobzio/capitan"

// Field keys for Fetcher events.
var (
	// KeyName is the name given to the Fetcher.
	KeyName = capitan.NewStringKey("name")

	// KeyState is the summary state of the Fetcher after a transition.
	KeyState = capitan.NewStringKey("state")

	// KeyError is the error message when a run fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDuration is how long the producer took.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyDebounce is the configured refresh debounce.
	KeyDebounce = capitan.NewDurationKey("debounce")

	// KeyWatcherType is the type name of the watcher driving a refresh loop.
	KeyWatcherType = capitan.NewStringKey("watcher_type")
)
