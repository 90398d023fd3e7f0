package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// openConsole opens the stream the card log is written to.
func openConsole(port string, baud int) (io.WriteCloser, error) {
	if port == "" {
		return nopCloser{os.Stdout}, nil
	}
	p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	log.Infof("Writing card log to %v at %v baud", port, baud)
	return p, nil
}
