package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/np/movable"
	"github.com/np/movable/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┌─┐┬  ┬┌─┐┌┐ ┬  ┌─┐
││││ │└┐┌┘├─┤├┴┐│  ├┤
┴ ┴└─┘ └┘ ┴ ┴└─┘┴─┘└─┘

Draggable floating widget demo.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	configFile = flag.String("config", "", "Style file (TOML), reloaded on change")
	termMode   = flag.Bool("term", false, "Run inside the terminal instead of a window")
	iconFile   = flag.String("icon", "", "Image drawn inside the widget")
	size       = flag.Int("size", 56, "Widget size in dp, or columns in terminal mode")
	snap       = flag.Bool("snap", true, "Snap to the closest screen edge on release")
	fade       = flag.Bool("fade", true, "Fade the widget when idle")
	sound      = flag.Bool("beep", false, "Play a tone on tap (terminal mode)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	style, err := loadStyle()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the style: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if *size <= 0 {
		log.Fatal(utils.DecorateText("The widget size should be positive!", utils.ErrorMessage))
	}

	var styles <-chan movable.Style
	if *configFile != "" {
		w, err := movable.WatchStyle(*configFile, applyFlags)
		if err != nil {
			log.Printf(utils.DecorateText("Style hot reload disabled: %v", utils.ErrorMessage), err)
		} else {
			defer w.Close()
			styles = w.Styles
			go logErrors(w.Errors)
		}
	}

	log.Printf("%s %s",
		utils.DecorateText("⚡ MOVABLE", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("fades to %.2f after %s, snap %v",
			style.RestingAlpha, utils.FormatDuration(style.IdleDelay), style.SnapToEdge), utils.DefaultMessage),
	)

	if *termMode {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal(utils.DecorateText("`-term` should be used with a terminal on stdout", utils.ErrorMessage))
		}
		if err := runTerm(style, styles); err != nil {
			log.Fatalf(utils.DecorateText("Terminal error: %v", utils.ErrorMessage), err)
		}
		return
	}
	runGio(style, styles)
}

// loadStyle reads the style file, if any, and applies the command line overrides.
func loadStyle() (movable.Style, error) {
	style := movable.DefaultStyle()
	if *configFile != "" {
		var err error
		if style, err = movable.LoadStyle(*configFile); err != nil {
			return style, err
		}
	}
	return applyFlags(style), nil
}

// applyFlags overrides the style with the flags set explicitly on the command line.
func applyFlags(s movable.Style) movable.Style {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "snap":
			s.SnapToEdge = *snap
		case "fade":
			s.FadeWhenIdle = *fade
		}
	})
	return s
}

// logErrors prints the style reload errors.
func logErrors(errs <-chan error) {
	for err := range errs {
		log.Printf(utils.DecorateText("Style not reloaded: %v", utils.ErrorMessage), err)
	}
}

// printTap logs a tap on the widget.
func printTap() {
	log.Printf("%s %s",
		utils.DecorateText("⚡ MOVABLE", utils.StatusMessage),
		utils.DecorateText("widget tapped ✔", utils.SuccessMessage),
	)
}
