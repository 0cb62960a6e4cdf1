package movable

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
)

// InvalidHeight is the usable height reported when the status bar inset
// cannot be determined. Vertical movement is left unclamped in that case.
const InvalidHeight = -1

// ErrInsetUnavailable is returned by a GeometryProvider which is unable
// to tell the height of the system status bar.
var ErrInsetUnavailable = errors.New("status bar inset is not available")

var logger = log.New(os.Stderr, "movable: ", 0)

// SetLogger replaces the logger used to report degraded screen geometry.
// A nil logger discards the messages.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// GeometryProvider is implemented by the host platform binding.
type GeometryProvider interface {
	// DisplaySize returns the full display size in pixels.
	DisplaySize() image.Point
	// StatusBarInset returns the height of the system status bar in pixels.
	StatusBarInset() (int, error)
	// TouchSlop returns the distance in pixels a pointer may travel
	// before a gesture is no longer considered a tap.
	TouchSlop() int
}

// Screen holds the usable screen area the widget is allowed to move in.
type Screen struct {
	Width  int
	Height int
	Slop   int
}

// NewScreen queries the provider once and returns the usable screen area.
// A failed status bar lookup is logged and degrades to InvalidHeight.
func NewScreen(p GeometryProvider) Screen {
	size := p.DisplaySize()
	s := Screen{
		Width:  size.X,
		Height: size.Y,
		Slop:   p.TouchSlop(),
	}
	inset, err := p.StatusBarInset()
	if err != nil {
		logger.Printf("vertical bounds unknown: %v", err)
		s.Height = InvalidHeight
		return s
	}
	s.Height -= inset
	return s
}

// HasHeight reports whether the usable height is known.
func (s Screen) HasHeight() bool {
	return s.Height >= 0
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d (slop %d)", s.Width, s.Height, s.Slop)
}

// StaticGeometry is a GeometryProvider with fixed values. An Inset below
// zero makes StatusBarInset fail with ErrInsetUnavailable.
type StaticGeometry struct {
	Size  image.Point
	Inset int
	Slop  int
}

func (g StaticGeometry) DisplaySize() image.Point { return g.Size }

func (g StaticGeometry) StatusBarInset() (int, error) {
	if g.Inset < 0 {
		return 0, fmt.Errorf("static geometry: %w", ErrInsetUnavailable)
	}
	return g.Inset, nil
}

func (g StaticGeometry) TouchSlop() int { return g.Slop }
