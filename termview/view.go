// Package termview attaches a movable.Widget to a tcell terminal screen.
// The first row of the screen is kept as a status line and plays the part
// of the status bar: the widget moves in the rows below it.
package termview

import (
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/np/movable"
	"golang.org/x/image/colornames"
)

const (
	// StatusRows is the number of rows reserved on top of the screen.
	StatusRows = 1
	// Slop is the tap distance in cells.
	Slop       = 1
)

// Geometry reads the screen geometry of a terminal.
type Geometry struct {
	Screen tcell.Screen
}

func (g Geometry) DisplaySize() image.Point {
	w, h := g.Screen.Size()
	return image.Pt(w, h)
}

func (g Geometry) StatusBarInset() (int, error) { return StatusRows, nil }

func (g Geometry) TouchSlop() int { return Slop }

// View is a widget drawn as a block of cells.
type View struct {
	Size       image.Point
	Color      color.Color
	Background color.Color

	screen   tcell.Screen
	widget   *movable.Widget
	tracking bool
	last     image.Point
}

// NewView creates the widget for the current screen size.
func NewView(screen tcell.Screen, style movable.Style, size image.Point) *View {
	v := &View{
		Size:       size,
		Color:      colornames.Darkorange,
		Background: colornames.Black,
		screen:     screen,
		widget:     movable.NewWidget(Geometry{screen}, style),
	}
	v.widget.Resize(size)
	return v
}

// Widget returns the underlying widget.
func (v *View) Widget() *movable.Widget {
	return v.widget
}

// Rect returns the cells covered by the widget.
func (v *View) Rect() image.Rectangle {
	min := v.widget.Position().Add(image.Pt(0, StatusRows))
	return image.Rectangle{Min: min, Max: min.Add(v.Size)}
}

// HandleEvent feeds a terminal event to the widget and reports
// whether the screen needs to be redrawn.
func (v *View) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := image.Pt(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0

		switch {
		case pressed && !v.tracking:
			if !p.In(v.Rect()) {
				return false
			}
			v.tracking = true
			v.last = p
			return v.widget.HandlePointer(movable.Event{Kind: movable.Press, Pos: p, Time: now})
		case pressed:
			// Terminals report motion per cell and repeat positions.
			if p == v.last {
				return false
			}
			v.last = p
			return v.widget.HandlePointer(movable.Event{Kind: movable.Move, Pos: p, Time: now})
		case v.tracking:
			v.tracking = false
			return v.widget.HandlePointer(movable.Event{Kind: movable.Release, Pos: p, Time: now})
		}
	case *tcell.EventResize:
		v.widget.SetScreen(movable.NewScreen(Geometry{v.screen}))
		return true
	}
	return false
}

// Update advances the widget to now.
func (v *View) Update(now time.Time) bool {
	return v.widget.Update(now)
}

// Draw paints the widget, blending its color into the background
// according to the current opacity.
func (v *View) Draw() {
	st := tcell.StyleDefault.Background(blend(v.Background, v.Color, v.widget.Alpha()))
	r := v.Rect()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawStatus writes text on the status line.
func DrawStatus(screen tcell.Screen, text string, st tcell.Style) {
	w, _ := screen.Size()
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		screen.SetContent(x, 0, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		screen.SetContent(x, 0, ' ', nil, st)
	}
}

// blend mixes fg over bg with the given opacity.
func blend(bg, fg color.Color, alpha float32) tcell.Color {
	b, _ := colorful.MakeColor(bg)
	f, _ := colorful.MakeColor(fg)
	r, g, bl := b.BlendRgb(f, float64(alpha)).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
