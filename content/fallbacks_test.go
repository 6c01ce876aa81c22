package content

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/loadz"
)

func renamed(name string) Catalog {
	cat := DefaultCatalog()
	cat.Classes[0].Name = name
	return cat
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestFallbacks_Replace(t *testing.T) {
	fb := NewFallbacks(DefaultCatalog())

	require.NoError(t, fb.Replace(renamed("Class X")))
	assert.Equal(t, "Class X", fb.Catalog().Classes[0].Name)
	assert.Equal(t, 1, fb.Updates())

	assert.Error(t, fb.Replace(Catalog{}))
	assert.Equal(t, "Class X", fb.Catalog().Classes[0].Name)
	assert.Equal(t, 1, fb.Updates())
}

func TestFallbacks_WatchKeepsPreviousOnBadUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := make(chan []byte)
	fb := NewFallbacks(DefaultCatalog())
	require.NoError(t, fb.Watch(ctx, loadz.NewDirectChannelWatcher(src), loadz.JSONCodec{}))

	src <- mustJSON(t, renamed("First"))
	require.Eventually(t, func() bool { return fb.Updates() == 1 }, time.Second, 5*time.Millisecond)

	src <- []byte("{not json")
	src <- mustJSON(t, Catalog{Boards: []string{"CBSE"}})
	src <- mustJSON(t, renamed("Second"))
	require.Eventually(t, func() bool { return fb.Updates() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Second", fb.Catalog().Classes[0].Name)
}

func TestFallbacks_WatchFileYAML(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
classes:
  - id: 1
    name: Class 9
    description: Foundation year
boards: [CBSE]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	fb := NewFallbacks(DefaultCatalog())
	require.NoError(t, fb.WatchFile(ctx, path))

	require.Eventually(t, func() bool { return fb.Updates() == 1 }, 2*time.Second, 10*time.Millisecond)
	cat := fb.Catalog()
	require.Len(t, cat.Classes, 1)
	assert.Equal(t, "Class 9", cat.Classes[0].Name)
	assert.Equal(t, []string{"CBSE"}, cat.Boards)
}

func TestFallbacks_WatchFileMissingDirectory(t *testing.T) {
	fb := NewFallbacks(DefaultCatalog())
	err := fb.WatchFile(context.Background(), filepath.Join(t.TempDir(), "missing", "catalog.json"))
	assert.Error(t, err)
}

func TestFallbacks_WatchTOML(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := make(chan []byte, 1)
	src <- []byte(`
boards = ["ICSE"]

[[classes]]
id = 1
name = "Class 10"
description = "Board year"

[notesUrls.10]
ICSE = "www.class10icse.com"
`)
	fb := NewFallbacks(DefaultCatalog())
	require.NoError(t, fb.Watch(ctx, loadz.NewDirectChannelWatcher(src), loadz.TOMLCodec{}))

	require.Eventually(t, func() bool { return fb.Updates() == 1 }, time.Second, 5*time.Millisecond)
	cat := fb.Catalog()
	assert.Equal(t, []string{"ICSE"}, cat.Boards)
	assert.Equal(t, "www.class10icse.com", cat.NotesURL(1, "ICSE"))
}
