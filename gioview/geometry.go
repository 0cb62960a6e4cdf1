package gioview

import (
	"image"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/unit"
)

// TouchSlop is the pointer travel below which a gesture counts as a tap.
const TouchSlop = unit.Dp(8)

// Geometry is the screen geometry of a Gio window, taken from a frame.
// Size excludes the left, right and bottom system insets; the top inset
// is reported as the status bar.
type Geometry struct {
	Size  image.Point
	Inset int
	Slop  int
}

// FrameGeometry reads the window size and the system insets of a frame.
// layout.NewContext moves the origin past the left and top insets, so the
// widget margins are measured from that corner.
func FrameGeometry(gtx layout.Context, e system.FrameEvent) Geometry {
	in := e.Insets
	return Geometry{
		Size:  e.Size.Sub(image.Pt(gtx.Dp(in.Left)+gtx.Dp(in.Right), gtx.Dp(in.Bottom))),
		Inset: gtx.Dp(in.Top),
		Slop:  gtx.Dp(TouchSlop),
	}
}

func (g Geometry) DisplaySize() image.Point { return g.Size }

// StatusBarInset returns the top system inset. Gio always reports it,
// zero on platforms without a status bar.
func (g Geometry) StatusBarInset() (int, error) { return g.Inset, nil }

func (g Geometry) TouchSlop() int { return g.Slop }
