package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errMsg string
	}{
		{name: "simple", path: "api/widget.dart"},
		{name: "nested", path: "a/b/c/widget.dart"},
		{name: "single file", path: "widget.dart"},
		{name: "dots in name", path: "a/widget..dart"},
		{name: "empty", path: "", errMsg: "empty"},
		{name: "leading slash", path: "/abs/widget.dart", errMsg: "absolute paths not allowed"},
		{name: "drive letter", path: "C:/widget.dart", errMsg: "absolute paths not allowed"},
		{name: "backslash", path: `api\widget.dart`, errMsg: "separator"},
		{name: "traversal", path: "api/../widget.dart", errMsg: "path traversal not allowed"},
		{name: "leading traversal", path: "../widget.dart", errMsg: "path traversal not allowed"},
		{name: "just dotdot", path: "..", errMsg: "path traversal not allowed"},
		{name: "current dir prefix", path: "./widget.dart", errMsg: "not clean"},
		{name: "double slash", path: "api//widget.dart", errMsg: "not clean"},
		{name: "trailing slash", path: "api/", errMsg: "not clean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestDir_WriteFile(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)

	require.NoError(t, d.WriteFile(context.Background(), "api/models/widget.dart", []byte("class Widget {}\n")))

	got, err := os.ReadFile(filepath.Join(root, "api", "models", "widget.dart"))
	require.NoError(t, err)
	assert.Equal(t, "class Widget {}\n", string(got))

	info, err := os.Stat(filepath.Join(root, "api", "models", "widget.dart"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Join(root, "api", "models"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestDir_Overwrite(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	d := NewDir(root)
	require.NoError(t, d.WriteFile(ctx, "widget.dart", []byte("one")))
	require.NoError(t, d.WriteFile(ctx, "widget.dart", []byte("two")))
	got, err := os.ReadFile(filepath.Join(root, "widget.dart"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	d.Overwrite = false
	err = d.WriteFile(ctx, "widget.dart", []byte("three"))
	assert.ErrorContains(t, err, "already exists")
	require.NoError(t, d.WriteFile(ctx, "gadget.dart", []byte("new")))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDir_InvalidPath(t *testing.T) {
	d := NewDir(t.TempDir())
	err := d.WriteFile(context.Background(), "../escape.dart", nil)
	assert.ErrorContains(t, err, "invalid path")
}

func TestDir_Cancelled(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewDir(root).WriteFile(ctx, "widget.dart", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(root, "widget.dart"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	content := []byte("class A {}")
	require.NoError(t, m.WriteFile(ctx, "b/a.dart", content))
	require.NoError(t, m.WriteFile(ctx, "a/b.dart", []byte("class B {}")))
	content[0] = 'X'

	assert.Equal(t, "class A {}", string(m.Get("b/a.dart")))
	assert.Nil(t, m.Get("missing.dart"))
	assert.Equal(t, []string{"a/b.dart", "b/a.dart"}, m.Paths())
	assert.Len(t, m.Files(), 2)

	assert.Error(t, m.WriteFile(ctx, "/abs.dart", nil))

	m.Reset()
	assert.Empty(t, m.Paths())
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.WriteFile(ctx, fmt.Sprintf("f%02d.dart", i), []byte("x")))
		}()
	}
	wg.Wait()
	assert.Len(t, m.Paths(), 50)
}
