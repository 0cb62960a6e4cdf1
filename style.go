package movable

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Default style values.
const (
	DefaultRestingAlpha = 0.2
	DefaultIdleDelay    = 2500 * time.Millisecond
	DefaultTickInterval = 500 * time.Millisecond
	DefaultSnapDuration = 500 * time.Millisecond
)

// Style is the construction time configuration of a Widget.
type Style struct {
	// RestingAlpha is the opacity the widget fades to once idle.
	RestingAlpha float32
	// IdleDelay is the time without interaction before fading.
	IdleDelay time.Duration
	// TickInterval is the granularity of the idle timer ticks.
	TickInterval time.Duration
	// SnapToEdge moves the widget to the closest horizontal edge on release.
	SnapToEdge bool
	// FadeWhenIdle enables the idle fade.
	FadeWhenIdle bool
	// SnapDuration is the length of the edge snap animation.
	SnapDuration time.Duration
}

// DefaultStyle returns the style with both fade and edge snap enabled.
func DefaultStyle() Style {
	return Style{
		RestingAlpha: DefaultRestingAlpha,
		IdleDelay:    DefaultIdleDelay,
		TickInterval: DefaultTickInterval,
		SnapToEdge:   true,
		FadeWhenIdle: true,
		SnapDuration: DefaultSnapDuration,
	}
}

// Validate checks the style values.
func (s Style) Validate() error {
	if s.RestingAlpha < 0 || s.RestingAlpha > 1 {
		return fmt.Errorf("resting alpha %v out of range [0, 1]", s.RestingAlpha)
	}
	if s.IdleDelay <= 0 {
		return fmt.Errorf("idle delay must be positive, got %v", s.IdleDelay)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", s.TickInterval)
	}
	if s.SnapDuration <= 0 {
		return fmt.Errorf("snap duration must be positive, got %v", s.SnapDuration)
	}
	return nil
}

// duration is a time.Duration which reads and writes itself as text in TOML files.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// styleFile is the on-disk layout of a Style.
type styleFile struct {
	RestingAlpha float32  `toml:"resting_alpha"`
	IdleDelay    duration `toml:"idle_delay"`
	TickInterval duration `toml:"tick_interval"`
	SnapToEdge   bool     `toml:"snap_to_edge"`
	FadeWhenIdle bool     `toml:"fade_when_idle"`
	SnapDuration duration `toml:"snap_duration"`
}

func (s Style) file() styleFile {
	return styleFile{
		RestingAlpha: s.RestingAlpha,
		IdleDelay:    duration{s.IdleDelay},
		TickInterval: duration{s.TickInterval},
		SnapToEdge:   s.SnapToEdge,
		FadeWhenIdle: s.FadeWhenIdle,
		SnapDuration: duration{s.SnapDuration},
	}
}

func (f styleFile) style() Style {
	return Style{
		RestingAlpha: f.RestingAlpha,
		IdleDelay:    f.IdleDelay.Duration,
		TickInterval: f.TickInterval.Duration,
		SnapToEdge:   f.SnapToEdge,
		FadeWhenIdle: f.FadeWhenIdle,
		SnapDuration: f.SnapDuration.Duration,
	}
}

// DecodeStyle decodes a TOML document on top of the default style.
// Keys missing from the document keep their default values.
func DecodeStyle(data string) (Style, error) {
	f := DefaultStyle().file()
	if _, err := toml.Decode(data, &f); err != nil {
		return Style{}, fmt.Errorf("unable to decode style: %w", err)
	}
	s := f.style()
	if err := s.Validate(); err != nil {
		return Style{}, fmt.Errorf("invalid style: %w", err)
	}
	return s, nil
}

// LoadStyle reads a TOML style file. A missing file yields the default style.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultStyle(), nil
	}
	if err != nil {
		return Style{}, fmt.Errorf("unable to read style file: %w", err)
	}
	s, err := DecodeStyle(string(data))
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteStyle encodes the style into a TOML file.
func WriteStyle(path string, s Style) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.file()); err != nil {
		return fmt.Errorf("unable to encode style: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write style file: %w", err)
	}
	return nil
}
