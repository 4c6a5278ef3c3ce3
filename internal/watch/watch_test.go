package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/classql/internal/watch"
)

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := watch.NewWatcher(filepath.Join(t.TempDir(), "nope"), ".html", func() error { return nil })
	require.Error(t, err)
}

func TestWatcher_DebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	calls := make(chan struct{}, 16)

	w, err := watch.NewWatcher(dir, ".html", func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	// Start runs the callback once up front.
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("no initial callback")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o644))

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("no callback after change")
	}

	// Files with other extensions never trigger.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-calls:
		t.Fatal("callback fired for ignored extension")
	case <-time.After(time.Second):
	}
}

func TestWatcher_BurstCollapsesToOneCallback(t *testing.T) {
	dir := t.TempDir()
	calls := make(chan struct{}, 16)

	w, err := watch.NewWatcher(dir, ".html", func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	<-calls // initial run

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte{byte(i)}, 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("no callback after burst")
	}

	select {
	case <-calls:
		t.Fatal("burst produced more than one callback")
	case <-time.After(time.Second):
	}
}
