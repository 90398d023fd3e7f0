//go:build !pi
// +build !pi

package ui

import (
	"github.com/sirupsen/logrus"
)

// GetColorLED returns an LED that only logs what it would show.
func GetColorLED(red, green, blue string) (ColorLed, error) {
	return cliLed{}, nil
}

type cliLed struct{}

func (cliLed) Show(c Color) {
	logrus.Println("LED:", c)
}
