package loadz

import "context"

// Watcher observes a source for changes and emits raw bytes on a channel.
//
// Fetchers use a Watcher as a refresh trigger (see Fetcher.RefreshOn);
// the content package also decodes the bytes into fallback data.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when changes occur. The channel is closed when the context
	// is canceled or an unrecoverable error occurs.
	//
	// Implementations should emit the current value immediately.
	Watch(ctx context.Context) (<-chan []byte, error)
}
