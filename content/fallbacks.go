package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/loadz"
)

// CatalogSource supplies the current catalog.
type CatalogSource interface {
	Catalog() Catalog
}

// Fallbacks holds the catalog served when the API cannot answer. It starts
// from a fixed catalog and may follow a watched source.
type Fallbacks struct {
	mu      sync.RWMutex
	current Catalog
	updates int
}

// NewFallbacks creates Fallbacks that serve initial.
func NewFallbacks(initial Catalog) *Fallbacks {
	return &Fallbacks{current: initial}
}

// Catalog returns the active catalog.
func (f *Fallbacks) Catalog() Catalog {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Updates returns how many catalogs have replaced the initial one.
func (f *Fallbacks) Updates() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.updates
}

// Replace validates c and makes it the active catalog.
func (f *Fallbacks) Replace(c Catalog) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	f.mu.Lock()
	f.current = c
	f.updates++
	f.mu.Unlock()
	return nil
}

// Watch replaces the active catalog each time w emits a document that
// codec decodes into a valid Catalog. Bad documents leave the previous
// catalog in place. Watch returns once the watcher has started; updates
// are applied in the background until ctx is canceled.
func (f *Fallbacks) Watch(ctx context.Context, w loadz.Watcher, codec loadz.Codec) error {
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	go func() {
		for data := range changes {
			f.apply(ctx, data, codec)
		}
	}()
	return nil
}

func (f *Fallbacks) apply(ctx context.Context, data []byte, codec loadz.Codec) {
	var c Catalog
	if err := codec.Unmarshal(data, &c); err != nil {
		capitan.Emit(ctx, CatalogRejected,
			KeyContentType.Field(codec.ContentType()),
			KeyReason.Field(fmt.Sprintf("decode: %v", err)),
		)
		return
	}
	if err := f.Replace(c); err != nil {
		capitan.Emit(ctx, CatalogRejected,
			KeyContentType.Field(codec.ContentType()),
			KeyReason.Field(err.Error()),
		)
		return
	}
	capitan.Emit(ctx, CatalogReplaced,
		KeyContentType.Field(codec.ContentType()),
		KeyClasses.Field(len(c.Classes)),
	)
}

// WatchFile is Watch over a file, with the codec chosen by extension.
func (f *Fallbacks) WatchFile(ctx context.Context, path string) error {
	return f.Watch(ctx, loadz.NewFileWatcher(path), loadz.CodecForPath(path))
}
