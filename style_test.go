package movable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle_Defaults(t *testing.T) {
	s := DefaultStyle()

	assert.Equal(t, float32(0.2), s.RestingAlpha)
	assert.Equal(t, 2500*time.Millisecond, s.IdleDelay)
	assert.Equal(t, 500*time.Millisecond, s.TickInterval)
	assert.Equal(t, 500*time.Millisecond, s.SnapDuration)
	assert.True(t, s.SnapToEdge)
	assert.True(t, s.FadeWhenIdle)
	assert.NoError(t, s.Validate())
}

func TestStyle_Validate(t *testing.T) {
	for name, mutate := range map[string]func(*Style){
		"alpha below zero": func(s *Style) { s.RestingAlpha = -0.1 },
		"alpha above one":  func(s *Style) { s.RestingAlpha = 1.5 },
		"zero idle delay":  func(s *Style) { s.IdleDelay = 0 },
		"negative tick":    func(s *Style) { s.TickInterval = -time.Second },
		"zero snap":        func(s *Style) { s.SnapDuration = 0 },
	} {
		s := DefaultStyle()
		mutate(&s)
		assert.Errorf(t, s.Validate(), name)
	}
}

func TestStyle_Decode(t *testing.T) {
	s, err := DecodeStyle(`
resting_alpha = 0.5
idle_delay = "1s"
snap_to_edge = false
`)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), s.RestingAlpha)
	assert.Equal(t, time.Second, s.IdleDelay)
	assert.False(t, s.SnapToEdge)
	// Untouched keys keep their defaults.
	assert.True(t, s.FadeWhenIdle)
	assert.Equal(t, DefaultTickInterval, s.TickInterval)
}

func TestStyle_DecodeErrors(t *testing.T) {
	_, err := DecodeStyle(`idle_delay = "soon"`)
	assert.Error(t, err)

	_, err = DecodeStyle(`resting_alpha = 3.0`)
	assert.Error(t, err)
}

func TestStyle_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")

	want := DefaultStyle()
	want.RestingAlpha = 0.4
	want.SnapDuration = 250 * time.Millisecond
	want.FadeWhenIdle = false
	require.NoError(t, WriteStyle(path, want))

	got, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStyle_LoadMissingFile(t *testing.T) {
	s, err := LoadStyle(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), s)
}

func TestStyle_LoadUnreadable(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadStyle(dir)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
