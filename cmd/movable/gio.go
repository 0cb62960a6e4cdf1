package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/np/movable"
	"github.com/np/movable/gioview"
	"github.com/np/movable/utils"
	"golang.org/x/image/colornames"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const toastDuration = 2 * time.Second

var (
	defaultBkgColor   = nrgba(colornames.Whitesmoke)
	defaultToastColor = color.NRGBA{A: 0xcc}
)

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// toast is a short message shown at the bottom of the window.
type toast struct {
	msg   string
	until time.Time
}

// runGio opens the demo window on the main goroutine and runs its event
// loop in the background, as Gio requires on some platforms.
func runGio(style movable.Style, styles <-chan movable.Style) {
	view := gioview.NewView(style, unit.Dp(*size))
	if *iconFile != "" {
		img, err := gioview.LoadIcon(*iconFile)
		if err != nil {
			log.Fatalf(utils.DecorateText("Failed to load the icon: %v", utils.ErrorMessage), err)
		}
		view.SetIcon(img)
	}

	go func() {
		w := app.NewWindow(
			app.Title("Movable"),
			app.Size(unit.Dp(420), unit.Dp(760)),
		)
		if err := loop(w, view, styles); err != nil {
			log.Fatalf(utils.DecorateText("Window error: %v", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop handles the window events until the window is closed.
func loop(w *app.Window, view *gioview.View, styles <-chan movable.Style) error {
	var (
		ops op.Ops
		msg toast
	)
	th := material.NewTheme(gofont.Collection())

	for {
		select {
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				paint.Fill(gtx.Ops, defaultBkgColor)

				view.Layout(gtx, gioview.FrameGeometry(gtx, e), nil)
				for view.Clicked() {
					printTap()
					msg = toast{msg: "The widget was tapped", until: gtx.Now.Add(toastDuration)}
				}
				msg.layout(gtx, th)

				e.Frame(gtx.Ops)
			}
		case s, ok := <-styles:
			if !ok {
				styles = nil
				continue
			}
			view.SetStyle(s)
			w.Invalidate()
		}
	}
}

func (t toast) layout(gtx C, th *material.Theme) D {
	if !gtx.Now.Before(t.until) {
		return D{}
	}
	op.InvalidateOp{At: t.until}.Add(gtx.Ops)

	return layout.S.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(unit.Dp(48)).Layout(gtx, func(gtx C) D {
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					rr := gtx.Dp(unit.Dp(8))
					defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, rr).Push(gtx.Ops).Pop()
					paint.Fill(gtx.Ops, defaultToastColor)
					return D{Size: gtx.Constraints.Min}
				},
				func(gtx C) D {
					return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
						lbl := material.Body1(th, t.msg)
						lbl.Color = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
						return lbl.Layout(gtx)
					})
				},
			)
		})
	})
}
