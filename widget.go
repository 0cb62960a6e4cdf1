package movable

import (
	"image"
	"time"

	"github.com/np/movable/utils"
)

// State of the gesture state machine.
type State uint8

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Pressed means the pointer is down and has not moved yet.
	Pressed
	// Dragging means the pointer is down and has moved at least once.
	Dragging
	// TapPending is the state a released gesture is in while listeners
	// are notified of the tap.
	TapPending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Pressed:
		return "Pressed"
	case Dragging:
		return "Dragging"
	case TapPending:
		return "TapPending"
	default:
		panic("invalid State")
	}
}

// Widget is a draggable element which keeps itself inside the screen.
// It is not safe for concurrent use: all methods are expected to be called
// from the host's UI loop.
type Widget struct {
	style  Style
	screen Screen

	size   image.Point
	sized  bool
	bounds Bounds
	pos    image.Point
	alpha  float32
	state  State

	// Touch session, valid while Pressed or Dragging.
	pressPoint image.Point
	lastPoint  image.Point

	timer *IdleTimer
	// armed is set once the idle timer had its first start, or a
	// gesture began before that.
	armed   bool
	snap    Animation
	clicks  int
	onClick []func()
}

var _ Draggable = (*Widget)(nil)

// NewWidget creates a widget for the screen described by the provider.
// The screen geometry is read once, here.
func NewWidget(geom GeometryProvider, style Style) *Widget {
	return NewWidgetWithScreen(NewScreen(geom), style)
}

// NewWidgetWithScreen creates a widget for an already resolved screen.
func NewWidgetWithScreen(s Screen, style Style) *Widget {
	w := &Widget{
		style:  style,
		screen: s,
		alpha:  1,
	}
	w.timer = NewIdleTimer(style.IdleDelay, style.TickInterval, func() {
		w.alpha = w.style.RestingAlpha
	})
	return w
}

// OnClick registers a function called on every tap.
func (w *Widget) OnClick(fn func()) {
	w.onClick = append(w.onClick, fn)
}

// OnIdleTick registers a function called on every idle timer tick.
func (w *Widget) OnIdleTick(fn func(remaining time.Duration)) {
	w.timer.OnTick = fn
}

// Clicked reports whether a tap happened since the last call, consuming it.
func (w *Widget) Clicked() bool {
	if w.clicks == 0 {
		return false
	}
	w.clicks--
	return true
}

// HandlePointer implements Draggable.
func (w *Widget) HandlePointer(e Event) bool {
	switch e.Kind {
	case Press:
		w.press(e.Pos)
		return true
	case Move:
		return w.move(e.Pos)
	case Release:
		return w.release(e.Time, true)
	case Cancel:
		return w.release(e.Time, false)
	}
	return false
}

func (w *Widget) press(p image.Point) {
	w.timer.Cancel()
	w.armed = true
	w.alpha = 1
	// A snap still in flight would fight the drag for the left margin.
	w.snap.Stop()

	w.pressPoint = p
	w.lastPoint = p
	w.state = Pressed
}

func (w *Widget) move(q image.Point) bool {
	if w.state != Pressed && w.state != Dragging {
		return false
	}
	w.pos = w.bounds.Clamp(w.pos.Add(q.Sub(w.lastPoint)))
	w.lastPoint = q
	w.state = Dragging
	return true
}

// release ends the touch session. The release position is not applied:
// classification uses the last move position.
func (w *Widget) release(now time.Time, mayTap bool) bool {
	if w.state != Pressed && w.state != Dragging {
		return false
	}
	dx := utils.Abs(w.lastPoint.X - w.pressPoint.X)
	dy := utils.Abs(w.lastPoint.Y - w.pressPoint.Y)
	if mayTap && dx < w.screen.Slop && dy < w.screen.Slop {
		w.state = TapPending
		w.clicks++
		for _, fn := range w.onClick {
			fn()
		}
	}
	w.state = Idle

	if w.style.SnapToEdge {
		w.startSnap(now)
	}
	if w.style.FadeWhenIdle {
		w.timer.Start(now)
	}
	return true
}

// SnapTarget returns the left margin of the horizontal edge closest to
// the widget's center.
func (w *Widget) SnapTarget() int {
	if w.pos.X+w.size.X/2 <= w.screen.Width/2 {
		return w.bounds.MinLeft
	}
	return w.bounds.MaxLeft
}

func (w *Widget) startSnap(now time.Time) {
	if !w.bounds.Horizontal {
		return
	}
	to := w.SnapTarget()
	if to == w.pos.X {
		return
	}
	w.snap.Start(w.pos.X, to, now, w.style.SnapDuration)
}

// Update advances the snap animation and the idle timer to now.
// It reports whether the position or the opacity changed.
func (w *Widget) Update(now time.Time) bool {
	changed := false
	if !w.armed {
		// The widget fades even if it is never touched.
		w.armed = true
		if w.style.FadeWhenIdle && w.state == Idle {
			w.timer.Start(now)
		}
	}
	if w.snap.Running() {
		if x := w.snap.Value(now); x != w.pos.X {
			w.pos.X = x
			changed = true
		}
		if w.snap.Done(now) {
			w.snap.Stop()
		}
	}
	alpha := w.alpha
	w.timer.Poll(now)
	return changed || alpha != w.alpha
}

// Animating reports whether a snap animation is in flight. The host should
// redraw on every frame while it is.
func (w *Widget) Animating() bool {
	return w.snap.Running()
}

// NextDeadline returns the instant the idle timer next needs an Update,
// or the zero time when it is disarmed.
func (w *Widget) NextDeadline() time.Time {
	return w.timer.Deadline()
}

// Resize records the widget size, recomputes the movement bounds and
// pulls the widget back inside them.
func (w *Widget) Resize(size image.Point) {
	if w.sized && size == w.size {
		return
	}
	w.size = size
	w.sized = true
	w.bounds = computeBounds(w.screen, size)
	w.pos = w.bounds.Clamp(w.pos)
}

// SetScreen replaces the screen geometry, e.g. after a rotation.
func (w *Widget) SetScreen(s Screen) {
	w.screen = s
	if w.sized {
		w.bounds = computeBounds(s, w.size)
		w.pos = w.bounds.Clamp(w.pos)
	}
}

// SetStyle applies a new style. An armed idle timer keeps its deadline;
// the new delay is used from the next start.
func (w *Widget) SetStyle(s Style) {
	fadeWasEnabled := w.style.FadeWhenIdle
	w.style = s
	w.timer.Delay = s.IdleDelay
	w.timer.Interval = s.TickInterval
	switch {
	case !s.FadeWhenIdle:
		w.timer.Cancel()
		w.alpha = 1
	case !fadeWasEnabled:
		// Arm on the next Update.
		w.armed = false
	}
	if !s.SnapToEdge {
		w.snap.Stop()
	}
}

// Position implements Draggable.
func (w *Widget) Position() image.Point {
	return w.pos
}

// Reposition implements Draggable. It aborts a running snap animation.
func (w *Widget) Reposition(p image.Point) {
	w.snap.Stop()
	w.pos = w.bounds.Clamp(p)
}

// Alpha returns the current opacity in [0, 1].
func (w *Widget) Alpha() float32 {
	return w.alpha
}

// State returns the gesture state.
func (w *Widget) State() State {
	return w.state
}

// Bounds returns the current movement bounds.
func (w *Widget) Bounds() Bounds {
	return w.bounds
}

// Size returns the last size passed to Resize.
func (w *Widget) Size() image.Point {
	return w.size
}

// Screen returns the screen geometry the widget clamps against.
func (w *Widget) Screen() Screen {
	return w.screen
}

// Style returns the active style.
func (w *Widget) Style() Style {
	return w.style
}
