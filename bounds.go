package movable

import (
	"image"

	"github.com/np/movable/utils"
)

// Bounds is the range of margins the widget may take.
type Bounds struct {
	MinLeft, MaxLeft int
	MinTop, MaxTop   int

	// Horizontal and Vertical report whether the range on that axis is known.
	Horizontal bool
	Vertical   bool
}

// computeBounds derives the movement range of a widget of the given size.
// A widget larger than the screen is pinned to the minimum margin.
func computeBounds(s Screen, size image.Point) Bounds {
	b := Bounds{
		Horizontal: s.Width >= 0,
		Vertical:   s.HasHeight(),
	}
	if b.Horizontal {
		b.MaxLeft = utils.Max(b.MinLeft, s.Width-size.X)
	}
	if b.Vertical {
		b.MaxTop = utils.Max(b.MinTop, s.Height-size.Y)
	}
	return b
}

// Clamp restricts p to the known ranges. Unknown axes are left as they are.
func (b Bounds) Clamp(p image.Point) image.Point {
	if b.Horizontal {
		p.X = utils.Clamp(p.X, b.MinLeft, b.MaxLeft)
	}
	if b.Vertical {
		p.Y = utils.Clamp(p.Y, b.MinTop, b.MaxTop)
	}
	return p
}

// Contains reports whether p satisfies the known ranges.
func (b Bounds) Contains(p image.Point) bool {
	return b.Clamp(p) == p
}
