package movable

import (
	"image"
	"time"
)

// Kind of a pointer event.
type Kind uint8

const (
	// Press is a finger or primary button going down.
	Press Kind = iota
	// Move is a pointer movement while pressed.
	Move
	// Release is a finger or primary button going up.
	Release
	// Cancel aborts the gesture, e.g. when another handler grabs the pointer.
	Cancel
)

// Event is a pointer event in absolute screen coordinates.
type Event struct {
	Kind Kind
	Pos  image.Point
	Time time.Time
}

// Draggable is the capability a host binding drives.
// The widget is attached to a native view by composition rather than
// extending a toolkit base view.
type Draggable interface {
	// HandlePointer consumes a pointer event and reports whether it was handled.
	HandlePointer(e Event) bool
	// Position returns the current left and top margins.
	Position() image.Point
	// Reposition moves the widget to p, clamped to its movement bounds.
	Reposition(p image.Point)
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Move:
		return "Move"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	default:
		panic("invalid Kind")
	}
}
