package loadz

import "sync"

// errorRing retains the most recent errors up to a fixed capacity.
// A nil ring is valid and retains nothing.
type errorRing struct {
	mu    sync.RWMutex
	slots []error
	next  int
	count int
}

// newErrorRing returns nil when size is not positive.
func newErrorRing(size int) *errorRing {
	if size <= 0 {
		return nil
	}
	return &errorRing{slots: make([]error, size)}
}

func (r *errorRing) push(err error) {
	if r == nil || err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[r.next] = err
	r.next = (r.next + 1) % len(r.slots)
	if r.count < len(r.slots) {
		r.count++
	}
}

func (r *errorRing) clear() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.slots)
	r.next = 0
	r.count = 0
}

// all returns the retained errors, oldest first.
func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	size := len(r.slots)
	out := make([]error, 0, r.count)
	for i := size - r.count; i < size; i++ {
		out = append(out, r.slots[(r.next+i)%size])
	}
	return out
}
