package main

import (
	"bytes"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/callebjorkell/rc522-uid-logger/nfc"
	"github.com/stretchr/testify/assert"
)

func TestStopOnSignal(t *testing.T) {
	signals := make(chan os.Signal, 1)
	released := make(chan struct{})
	stop := stopOnSignal(signals, func() { close(released) })

	select {
	case <-stop:
		t.Fatal("stopped without a signal")
	default:
	}

	signals <- syscall.SIGINT
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("signal handler was not released")
	}
	// release only runs once stop is closed
	select {
	case <-stop:
	default:
		t.Fatal("stop channel is still open")
	}
}

func TestRunCommandUnknown(t *testing.T) {
	var out bytes.Buffer
	code := -1
	app.ErrorWriter(&out).Terminate(func(c int) { code = c })
	defer func() { app.ErrorWriter(os.Stderr).UsageWriter(os.Stderr).Terminate(os.Exit) }()

	runCommand("bogus", nfc.Config{}, make(chan struct{}))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Unrecognized command")
	assert.Contains(t, out.String(), "rc522-uid-logger")
}
