package loadz

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func receive(t *testing.T, out <-chan []byte, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case data, ok := <-out:
		return string(data), ok
	case <-time.After(timeout):
		return "", false
	}
}

func TestFileWatcher_EmitsInitialContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("initial"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if got, ok := receive(t, out, time.Second); !ok || got != "initial" {
		t.Errorf("expected 'initial', got %q", got)
	}
}

func TestFileWatcher_EmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("initial"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	receive(t, out, time.Second)

	if err := os.WriteFile(path, []byte("updated"), 0o600); err != nil {
		t.Fatalf("failed to update file: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		got, ok := receive(t, out, time.Second)
		if !ok {
			break
		}
		if got == "updated" {
			return
		}
	}
	t.Error("expected 'updated' after write")
}

func TestFileWatcher_SeesReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("v1"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	receive(t, out, time.Second)

	tmp := filepath.Join(dir, "catalog.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("v2"), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to rename: %v", err)
	}

	if got, ok := receive(t, out, time.Second); !ok || got != "v2" {
		t.Errorf("expected 'v2' after rename, got %q", got)
	}
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "catalog.yaml")
	if _, err := NewFileWatcher(path).Watch(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileWatcher_Path(t *testing.T) {
	if p := NewFileWatcher("a/b.json").Path(); p != "a/b.json" {
		t.Errorf("expected a/b.json, got %q", p)
	}
}
