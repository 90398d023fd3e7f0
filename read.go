package main

import (
	"github.com/callebjorkell/rc522-uid-logger/nfc"
	log "github.com/sirupsen/logrus"
)

func readSingleCard(cfg nfc.Config, stop <-chan struct{}) {
	reader := openReader(cfg)
	defer reader.Close()

	out, err := openConsole(*consolePort, *baud)
	if err != nil {
		log.Fatalf("Could not open console: %v", err)
	}
	defer out.Close()

	log.Infoln("Waiting for a card...")
	e, err := nfc.NewWatcher(reader, nfc.NewConsole(out)).WaitForCard(*interval, stop)
	if err != nil {
		log.Debugln(err)
		return
	}
	log.Debugf("Read card %v", e.UID)
}
