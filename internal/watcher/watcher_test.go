package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sheets/internal/watcher"
)

func newConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: false\n"), 0o600))
	return path
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	path := newConfigFile(t)

	w, err := watcher.New(watcher.Config{Path: path, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("debug: %t\n", i%2 == 0)), 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := newConfigFile(t)
	otherPath := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(otherPath, []byte("initial"), 0o600))

	w, err := watcher.New(watcher.Config{Path: path, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(otherPath, []byte("other content"), 0o600))

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_WaitCmd(t *testing.T) {
	path := newConfigFile(t)

	w, err := watcher.New(watcher.Config{Path: path, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600))

	msgCh := make(chan any, 1)
	go func() { msgCh <- w.WaitCmd(onChange)() }()

	select {
	case msg := <-msgCh:
		changed, ok := msg.(watcher.ChangedMsg)
		require.True(t, ok, "expected ChangedMsg, got %T", msg)
		require.Equal(t, filepath.Clean(path), changed.Path)
	case <-time.After(time.Second):
		t.Fatal("WaitCmd never returned")
	}
}

func TestWatcher_WaitCmdReturnsNilAfterStop(t *testing.T) {
	path := newConfigFile(t)

	w, err := watcher.New(watcher.Config{Path: path})
	require.NoError(t, err)

	onChange, err := w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Stop())

	require.Nil(t, w.WaitCmd(onChange)())
}

func TestWatcher_Stop(t *testing.T) {
	path := newConfigFile(t)

	w, err := watcher.New(watcher.Config{Path: path, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}
