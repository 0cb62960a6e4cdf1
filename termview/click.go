package termview

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickTone     = 880
	clickDuration = 50 * time.Millisecond
)

// Clicker plays a short tone, used as tap feedback.
type Clicker struct {
	rate beep.SampleRate
	tone float64
}

// NewClicker initializes the speaker.
func NewClicker() (*Clicker, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("unable to initialize the speaker: %w", err)
	}
	return &Clicker{rate: rate, tone: clickTone}, nil
}

// Click plays the tone without blocking.
func (c *Clicker) Click() {
	sine, err := generators.SineTone(c.rate, c.tone)
	if err != nil {
		log.Printf("click tone: %v", err)
		return
	}
	speaker.Play(beep.Take(c.rate.N(clickDuration), sine))
}
