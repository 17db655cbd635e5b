package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebase/internal/adapters/watch"
	"filebase/internal/core/domain"
	"filebase/internal/core/ports"
)

// nextEvent drains the subscription until an event with the wanted op shows
// up. Real filesystems produce extra chatter (creates, repeated writes), so
// tests match on the op they care about instead of exact sequences.
func nextEvent(t *testing.T, sub ports.WatchSubscription, want domain.FileEventOp) domain.FileEvent {
	t.Helper()

	deadline := time.After(2 * time.Second)

	for {
		select {
		case event, open := <-sub.Events():
			if !open {
				t.Fatal("events channel closed before the expected event arrived")
			}
			if event.Op == want {
				return event
			}
		case err := <-sub.Errors():
			t.Fatalf("unexpected watch error: %v", err)
		case <-deadline:
			t.Fatalf("no %s event arrived", want)
		}
	}
}

func setupWatchedFile(t *testing.T) (string, string, ports.WatchSubscription) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.bar")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0644))

	sub, err := watch.NewSource().Subscribe(dir)
	require.NoError(t, err)
	t.Cleanup(func() { sub.Close() })

	return dir, path, sub
}

func TestSubscribeFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := watch.NewSource().Subscribe(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWriteBecomesModified(t *testing.T) {
	t.Parallel()

	_, path, sub := setupWatchedFile(t)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0644))

	event := nextEvent(t, sub, domain.EventModified)
	assert.Equal(t, path, event.Path)
}

func TestRemoveBecomesDeleted(t *testing.T) {
	t.Parallel()

	_, path, sub := setupWatchedFile(t)

	require.NoError(t, os.Remove(path))

	event := nextEvent(t, sub, domain.EventDeleted)
	assert.Equal(t, path, event.Path)
}

func TestRenameWithinDirectoryBecomesMoved(t *testing.T) {
	t.Parallel()

	dir, path, sub := setupWatchedFile(t)
	dest := filepath.Join(dir, "Renamed.bar")

	require.NoError(t, os.Rename(path, dest))

	event := nextEvent(t, sub, domain.EventMoved)
	assert.Equal(t, path, event.Path)
	assert.Equal(t, dest, event.DestPath)
}

func TestRenameOutOfDirectoryBecomesDeleted(t *testing.T) {
	t.Parallel()

	_, path, sub := setupWatchedFile(t)
	dest := filepath.Join(t.TempDir(), "Foo.bar")

	require.NoError(t, os.Rename(path, dest))

	// no Create ever lands in the watched directory, so the pairing window
	// expires and the rename degrades to a deletion
	event := nextEvent(t, sub, domain.EventDeleted)
	assert.Equal(t, path, event.Path)
}

func TestCloseClosesTheEventsChannel(t *testing.T) {
	t.Parallel()

	_, _, sub := setupWatchedFile(t)

	require.NoError(t, sub.Close())

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-sub.Events():
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
