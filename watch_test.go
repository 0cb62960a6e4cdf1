package movable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchStyle_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, WriteStyle(path, DefaultStyle()))

	w, err := WatchStyle(path, func(s Style) Style {
		s.SnapToEdge = false
		return s
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`resting_alpha = 0.6`), 0644))

	// The write may be observed in several steps; wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-w.Styles:
			assert.False(t, s.SnapToEdge)
			if s.RestingAlpha == float32(0.6) {
				return
			}
		case <-w.Errors:
		case <-timeout:
			t.Fatal("style was not reloaded")
		}
	}
}

func TestWatchStyle_MissingDir(t *testing.T) {
	_, err := WatchStyle(filepath.Join(t.TempDir(), "nope", "style.toml"), nil)
	assert.Error(t, err)
}

func TestWatchStyle_IgnoresTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, WriteStyle(path, DefaultStyle()))

	w, err := WatchStyle(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, nil, 0644))
	require.NoError(t, os.WriteFile(path, []byte(`resting_alpha = 0.6`), 0644))

	select {
	case s := <-w.Styles:
		assert.Equal(t, float32(0.6), s.RestingAlpha)
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("style was not reloaded")
	}
}

func TestReloadStyle(t *testing.T) {
	dir := t.TempDir()

	_, ok, err := reloadStyle(filepath.Join(dir, "missing.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte(" \n"), 0644))
	_, ok, err = reloadStyle(empty)
	assert.NoError(t, err)
	assert.False(t, ok)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`resting_alpha = 3`), 0644))
	_, ok, err = reloadStyle(bad)
	assert.Error(t, err)
	assert.False(t, ok)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte(`resting_alpha = 0.6`), 0644))
	s, ok, err := reloadStyle(good)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float32(0.6), s.RestingAlpha)
}

func TestWatchStyle_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	w, err := WatchStyle(path, nil)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NotPanics(t, func() { w.Close() })

	// Both channels are closed once the watcher stops.
	select {
	case _, ok := <-w.Styles:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
