package main

import (
	"github.com/callebjorkell/rc522-uid-logger/nfc"
	"github.com/callebjorkell/rc522-uid-logger/ui"
	log "github.com/sirupsen/logrus"
)

func startWatching(cfg nfc.Config, stop <-chan struct{}) {
	reader := openReader(cfg)
	defer reader.Close()

	out, err := openConsole(*consolePort, *baud)
	if err != nil {
		log.Fatalf("Could not open console: %v", err)
	}
	defer out.Close()

	tally, err := nfc.NewTally()
	if err != nil {
		log.Fatal(err)
	}
	defer tally.Close()

	sinks := nfc.Sinks{nfc.NewConsole(out), tally}
	if *led {
		l, err := ui.GetColorLED(*ledRed, *ledGreen, *ledBlue)
		if err != nil {
			log.Fatal(err)
		}
		sinks = append(sinks, ui.NewIndicator(l))
	}

	log.Infof("Scan PICC to see UID, polling every %v", *interval)
	nfc.NewWatcher(reader, sinks).Run(*interval, stop)

	all, err := tally.All()
	if err != nil {
		log.Warnf("Could not read the session tally: %v", err)
		return
	}
	writeSummary(out, all)
}
