package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sweepd/internal/clean"
	"sweepd/internal/report"
	"sweepd/internal/watch"
	"sweepd/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietEngine() *clean.Engine {
	return clean.NewWithOptions(false, nil, report.NewWithWriters(os.Stderr, os.Stderr))
}

func TestNewRejectsBadDestinations(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing directory", func(t *testing.T) {
		rules := []types.Rule{{Destination: filepath.Join(tmpDir, "gone"), Kind: types.File, Patterns: []string{"tmp"}}}
		_, err := watch.New(quietEngine(), rules, time.Second)
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(tmpDir, "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		rules := []types.Rule{{Destination: file, Kind: types.File, Patterns: []string{"tmp"}}}
		_, err := watch.New(quietEngine(), rules, time.Second)
		assert.Error(t, err)
	})
}

func TestWatcherDeduplicatesDirectories(t *testing.T) {
	dir := t.TempDir()
	rules := []types.Rule{
		{Destination: dir, Kind: types.File, Patterns: []string{"tmp"}},
		{Destination: dir, Kind: types.Folder, Patterns: []string{"build"}},
	}

	w, err := watch.New(quietEngine(), rules, time.Second)
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, []string{dir}, w.Directories())
}

func TestWatcherStartStop(t *testing.T) {
	dir := t.TempDir()
	rules := []types.Rule{{Destination: dir, Kind: types.File, Patterns: []string{"tmp"}}}

	w, err := watch.New(quietEngine(), rules, time.Second)
	require.NoError(t, err)

	assert.False(t, w.IsRunning())
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "double start is rejected")

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop() // Stopping twice is harmless
}

func TestWatcherRunsRulesOnChange(t *testing.T) {
	dir := t.TempDir()
	rules := []types.Rule{{Destination: dir, Kind: types.File, Patterns: []string{"tmp"}}}

	w, err := watch.New(quietEngine(), rules, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// Creating a matching file should, after the debounce window, trigger a
	// run that deletes it.
	target := filepath.Join(dir, "junk.tmp")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	assert.Eventually(t, func() bool {
		_, err := os.Lstat(target)
		return os.IsNotExist(err)
	}, 5*time.Second, 50*time.Millisecond, "watcher should clean the new file")
}
