package main

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/np/movable"
	"github.com/np/movable/termview"
	"github.com/np/movable/utils"
)

const frameInterval = 16 * time.Millisecond

// runTerm runs the demo inside the terminal until Esc or Ctrl-C is pressed.
func runTerm(style movable.Style, styles <-chan movable.Style) error {
	var clicker *termview.Clicker
	if *sound {
		var err error
		if clicker, err = termview.NewClicker(); err != nil {
			// Non-fatal, the demo runs without sound.
			log.Printf(utils.DecorateText("Audio initialization failed: %v", utils.ErrorMessage), err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Log lines would scribble over the screen.
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)
	movable.SetLogger(nil)
	screen.HideCursor()

	// Cells are roughly twice as tall as wide.
	view := termview.NewView(screen, style, image.Pt(*size/8+2, *size/16+1))

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	status := fmt.Sprintf(" movable %s  drag the block, tap it, Esc to quit", Version)
	var toastUntil time.Time
	dirty := true

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
					return nil
				}
				continue
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if view.HandleEvent(ev, time.Now()) {
				dirty = true
			}
		case s, ok := <-styles:
			if !ok {
				styles = nil
				continue
			}
			view.Widget().SetStyle(s)
			dirty = true
		case now := <-ticker.C:
			for view.Widget().Clicked() {
				printTap()
				toastUntil = now.Add(toastDuration)
				if clicker != nil {
					clicker.Click()
				}
				dirty = true
			}
			if view.Update(now) || view.Widget().Animating() {
				dirty = true
			}
			if !toastUntil.IsZero() && !now.Before(toastUntil) {
				toastUntil = time.Time{}
				dirty = true
			}
			if !dirty {
				continue
			}
			dirty = false

			screen.Clear()
			text := status
			if !toastUntil.IsZero() {
				text = " The widget was tapped"
			}
			termview.DrawStatus(screen, text, tcell.StyleDefault.Reverse(true))
			view.Draw()
			screen.Show()
		}
	}
}
