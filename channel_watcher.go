package loadz

import "context"

// ChannelWatcher adapts an existing byte channel to the Watcher interface.
// It is mostly useful in tests and for in-process triggers.
type ChannelWatcher struct {
	src    <-chan []byte
	direct bool
}

// NewChannelWatcher forwards values from src through a goroutine that
// stops when the Watch context is done.
func NewChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src}
}

// NewDirectChannelWatcher hands src back from Watch unchanged, so sends
// and receives stay in lockstep with the test driving them.
func NewDirectChannelWatcher(src <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{src: src, direct: true}
}

// Watch returns a channel that emits values from the wrapped channel.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.direct {
		return w.src, nil
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			var (
				v  []byte
				ok bool
			)
			select {
			case <-ctx.Done():
				return
			case v, ok = <-w.src:
				if !ok {
					return
				}
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
