// Package gioview attaches a movable.Widget to a Gio user interface.
package gioview

import (
	"image"
	"image/color"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/np/movable"
	"golang.org/x/image/colornames"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var defaultColor = color.NRGBA{
	R: colornames.Darkorange.R,
	G: colornames.Darkorange.G,
	B: colornames.Darkorange.B,
	A: 0xff,
}

// View draws a movable.Widget floating over the rest of the window.
// The widget itself is created on the first Layout call, once the
// window geometry is known.
type View struct {
	// Size is the side of the square widget.
	Size unit.Dp
	// Color fills the widget when no icon is set.
	Color color.NRGBA

	style   movable.Style
	widget  *movable.Widget
	display image.Point
	icon    image.Image
	fitted  image.Image
	iconOp  paint.ImageOp
	iconPx  int
	// iconAlpha is the opacity iconOp was faded to.
	iconAlpha float32

	// origin is the position the input area was registered at
	// during the last frame. Pointer positions are relative to it.
	origin   image.Point
	tracking bool
	pid      pointer.ID
}

// NewView returns a view with the given style.
func NewView(style movable.Style, size unit.Dp) *View {
	return &View{
		Size:  size,
		Color: defaultColor,
		style: style,
	}
}

// SetIcon replaces the plain fill with an image, scaled to cover the widget.
func (v *View) SetIcon(img image.Image) {
	v.icon = img
	v.iconPx = 0
}

// SetStyle applies a new style to the widget.
func (v *View) SetStyle(s movable.Style) {
	v.style = s
	if v.widget != nil {
		v.widget.SetStyle(s)
	}
}

// Widget returns the underlying widget, nil before the first Layout.
func (v *View) Widget() *movable.Widget {
	return v.widget
}

// Alpha returns the opacity the widget is drawn with.
// Custom content passed to Layout applies it itself.
func (v *View) Alpha() float32 {
	if v.widget == nil {
		return 1
	}
	return v.widget.Alpha()
}

// Clicked reports whether the widget was tapped, consuming one tap.
func (v *View) Clicked() bool {
	return v.widget != nil && v.widget.Clicked()
}

// Layout processes pointer events, advances the widget and draws it.
// content is laid out with exact constraints matching the widget size;
// a nil content draws the default body faded to Alpha.
func (v *View) Layout(gtx C, geom movable.GeometryProvider, content layout.Widget) D {
	if v.widget == nil {
		v.widget = movable.NewWidget(geom, v.style)
		v.display = geom.DisplaySize()
	} else if d := geom.DisplaySize(); d != v.display {
		v.display = d
		v.widget.SetScreen(movable.NewScreen(geom))
	}
	if content == nil {
		content = v.body
	}

	v.handleEvents(gtx)

	px := gtx.Dp(v.Size)
	size := image.Pt(px, px)
	v.widget.Resize(size)
	v.widget.Update(gtx.Now)

	pos := v.widget.Position()
	v.origin = pos

	offset := op.Offset(pos).Push(gtx.Ops)
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	pointer.InputOp{
		Tag:   v,
		Grab:  v.tracking,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)

	cgtx := gtx
	cgtx.Constraints = layout.Exact(size)
	content(cgtx)

	area.Pop()
	offset.Pop()

	if v.widget.Animating() {
		op.InvalidateOp{}.Add(gtx.Ops)
	} else if at := v.widget.NextDeadline(); !at.IsZero() {
		op.InvalidateOp{At: at}.Add(gtx.Ops)
	}

	return D{Size: pos.Add(size)}
}

func (v *View) handleEvents(gtx C) {
	for _, ev := range gtx.Events(v) {
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		me := movable.Event{
			Pos:  v.origin.Add(e.Position.Round()),
			Time: gtx.Now,
		}
		switch e.Type {
		case pointer.Press:
			if v.tracking || !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			v.tracking = true
			v.pid = e.PointerID
			me.Kind = movable.Press
		case pointer.Drag:
			if !v.tracking || e.PointerID != v.pid {
				continue
			}
			me.Kind = movable.Move
		case pointer.Release:
			if !v.tracking || e.PointerID != v.pid {
				continue
			}
			v.tracking = false
			me.Kind = movable.Release
		case pointer.Cancel:
			if !v.tracking {
				continue
			}
			v.tracking = false
			me.Kind = movable.Cancel
		default:
			continue
		}
		v.widget.HandlePointer(me)
	}
}

// body draws the icon or a plain disc.
func (v *View) body(gtx C) D {
	size := gtx.Constraints.Max
	defer clip.Ellipse{Max: size}.Push(gtx.Ops).Pop()

	if v.icon == nil {
		paint.Fill(gtx.Ops, v.fill())
		return D{Size: size}
	}
	v.iconOp = v.iconImage(size.X)
	v.iconOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: size}
}

// fill returns the body color with its alpha scaled by the widget opacity.
func (v *View) fill() color.NRGBA {
	c := v.Color
	c.A = uint8(float32(c.A)*v.Alpha() + 0.5)
	return c
}

// iconImage returns the icon fitted to px and faded to the widget opacity.
// The result is cached until the size or the opacity change.
func (v *View) iconImage(px int) paint.ImageOp {
	alpha := v.Alpha()
	if v.iconPx != px || v.fitted == nil {
		v.iconPx = px
		v.fitted = fitIcon(v.icon, px)
		v.iconAlpha = -1
	}
	if v.iconAlpha != alpha {
		v.iconAlpha = alpha
		v.iconOp = paint.NewImageOp(fadeIcon(v.fitted, alpha))
	}
	return v.iconOp
}
