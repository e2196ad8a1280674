package scene

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSceneChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	path := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: 4\n"), 0o644))

	select {
	case name := <-w.Events:
		require.Equal(t, path, name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scene change event")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Empty(t, w.Drain())
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestFileFilters(t *testing.T) {
	require.True(t, isSceneFile("a/b.YAML"))
	require.True(t, isSceneFile("b.yml"))
	require.False(t, isSceneFile("b.json"))
	require.True(t, isTextureFile("media/tex0.png"))
	require.False(t, isTextureFile("media/tex0.jpg"))
}
