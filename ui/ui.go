package ui

import (
	"time"

	"github.com/callebjorkell/rc522-uid-logger/nfc"
)

type Color int

const (
	Off Color = iota
	Red
	Green
	Yellow
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	}
	return "Off"
}

// FlashDuration is how long the LED stays lit for a single event.
const FlashDuration = 300 * time.Millisecond

// ColorLed is an LED that can show one colour at a time.
type ColorLed interface {
	Show(c Color)
}

// ColorFor picks the colour that announces an outcome.
func ColorFor(o nfc.Outcome) Color {
	switch o {
	case nfc.NewCard:
		return Green
	case nfc.RepeatCard:
		return Yellow
	case nfc.UnsupportedTag:
		return Red
	}
	return Off
}

// Indicator flashes a LED for every event it handles.
type Indicator struct {
	led   ColorLed
	flash time.Duration
	sleep func(time.Duration)
}

func NewIndicator(led ColorLed) *Indicator {
	return &Indicator{led: led, flash: FlashDuration, sleep: time.Sleep}
}

func (i *Indicator) Handle(e nfc.Event) error {
	c := ColorFor(e.Outcome)
	if c == Off {
		return nil
	}
	i.led.Show(c)
	i.sleep(i.flash)
	i.led.Show(Off)
	return nil
}
