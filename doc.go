/*
Package movable implements a draggable floating widget: an element which follows
the finger while dragged, tells a tap apart from a drag, stays inside the visible
screen area, optionally snaps to the closest horizontal screen edge on release
and fades to a resting opacity after a period without interaction.

The package is toolkit independent. A host binding (see the gioview and termview
packages) feeds pointer events and the current time into a Widget and draws it
at the reported position and opacity.

	package main

	import (
		"image"
		"log"
		"time"

		"github.com/np/movable"
	)

	func main() {
		geom := movable.StaticGeometry{Size: image.Pt(1000, 1800), Inset: 60, Slop: 8}
		w := movable.NewWidget(geom, movable.DefaultStyle())
		w.OnClick(func() {
			log.Println("tapped")
		})
		w.Resize(image.Pt(100, 100))

		now := time.Now()
		w.HandlePointer(movable.Event{Kind: movable.Press, Pos: image.Pt(50, 50), Time: now})
		w.HandlePointer(movable.Event{Kind: movable.Move, Pos: image.Pt(200, 50), Time: now})
		w.HandlePointer(movable.Event{Kind: movable.Release, Pos: image.Pt(200, 50), Time: now})
	}
*/
package movable
