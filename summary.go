package main

import (
	"fmt"
	"io"

	"github.com/callebjorkell/rc522-uid-logger/nfc"
)

func writeSummary(w io.Writer, all []nfc.Sighting) {
	if len(all) == 0 {
		fmt.Fprintln(w, "No cards were read this session...")
		return
	}
	fmt.Fprintln(w, "                  UID │ Count │ First    │ Last     │ Type")
	fmt.Fprintln(w, "──────────────────────┼───────┼──────────┼──────────┼────────────────")
	for _, s := range all {
		fmt.Fprintf(w, "%21v │ %5v │ %8v │ %8v │ %v\n",
			s.UID, s.Count, s.First.Format("15:04:05"), s.Last.Format("15:04:05"), s.Type)
	}
}
