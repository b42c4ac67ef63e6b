package adapter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mojifix/internal/model"
)

func startWatcher(t *testing.T, root string) *Watcher {
	t.Helper()

	matcher := NewIgnoreMatcher(MatcherOptions{Roots: []string{root}})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w, err := NewWatcher([]string{root}, matcher, logger)
	require.NoError(t, err)

	go w.Start()
	t.Cleanup(func() { _ = w.Close() })

	return w
}

func waitForPath(t *testing.T, w *Watcher, want string) m.WatchEvent {
	t.Helper()

	timeout := time.After(5 * time.Second)

	for {
		select {
		case ev, ok := <-w.Events():
			require.True(t, ok, "event channel closed early")

			if string(ev.Path) == want {
				return ev
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for event", want)
		}
	}
}

func TestWatcher_ReportsFileWrites(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	path := filepath.Join(root, "app.js")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ev := waitForPath(t, w, path)
	assert.Contains(t, []m.WatchOp{m.OpCreate, m.OpWrite}, ev.Op)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	dir := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(dir, 0o755))

	path := filepath.Join(dir, "late.ts")

	// the directory is registered asynchronously, so retry the write
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		select {
		case ev := <-w.Events():
			if string(ev.Path) == path {
				return
			}
		case <-time.After(200 * time.Millisecond):
		}

		if time.Now().After(deadline) {
			require.FailNow(t, "no event from new directory")
		}
	}
}

func TestWatcher_FiltersIgnoredFiles(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.js.bak"), []byte("x"), 0o644))

	marker := filepath.Join(root, "marker.js")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, m.Path(marker), ev.Path, "ignored files must not produce events")
	case <-time.After(5 * time.Second):
		require.FailNow(t, "timed out")
	}
}

func TestWatcher_CloseEndsEvents(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events():
		for ok {
			_, ok = <-w.Events()
		}
	case <-time.After(5 * time.Second):
		require.FailNow(t, "events channel not closed")
	}
}
