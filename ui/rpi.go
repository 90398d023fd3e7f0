//go:build pi
// +build pi

package ui

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// The LED is common anode, so a low pin lights a colour.
type colorLed struct {
	r gpio.PinIO
	g gpio.PinIO
	b gpio.PinIO
}

func (c *colorLed) Show(col Color) {
	c.off()
	switch col {
	case Red:
		c.r.Out(gpio.Low)
	case Green:
		c.g.Out(gpio.Low)
	case Yellow:
		c.r.Out(gpio.Low)
		c.g.Out(gpio.Low)
	}
}

func (c *colorLed) off() {
	c.r.Out(gpio.High)
	c.g.Out(gpio.High)
	c.b.Out(gpio.High)
}

// GetColorLED claims the three pins of an RGB LED and turns it off. It shares the
// periph host and pin registry with the reader.
func GetColorLED(red, green, blue string) (ColorLed, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}
	logrus.Infoln("Initializing LED")

	c := colorLed{}
	for _, p := range []struct {
		name string
		pin  *gpio.PinIO
	}{{red, &c.r}, {green, &c.g}, {blue, &c.b}} {
		*p.pin = gpioreg.ByName(p.name)
		if *p.pin == nil {
			return nil, fmt.Errorf("no LED pin named %q", p.name)
		}
	}
	c.off()
	return &c, nil
}
