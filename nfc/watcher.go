package nfc

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Outcome int

const (
	Idle Outcome = iota
	UnsupportedTag
	NewCard
	RepeatCard
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case UnsupportedTag:
		return "unsupported tag"
	case NewCard:
		return "new card"
	case RepeatCard:
		return "repeat card"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Event is the result of a single poll cycle. UID and Type are empty for Idle.
type Event struct {
	Outcome Outcome
	UID     UID
	Type    PiccType
}

// Sink consumes the non idle events produced by a Watcher.
type Sink interface {
	Handle(e Event) error
}

// Sinks fans an event out to every sink in order. A failing sink does not keep
// the others from seeing the event.
type Sinks []Sink

func (s Sinks) Handle(e Event) error {
	var errs []error
	for _, sink := range s {
		if err := sink.Handle(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Watcher polls a Device and deduplicates cards against the last one it announced.
// It is not safe for concurrent use; a single goroutine owns it.
type Watcher struct {
	device Device
	sink   Sink

	// last is only meaningful when seen is set. An all zero UID is a valid card.
	last UID
	seen bool
}

func NewWatcher(device Device, sink Sink) *Watcher {
	if sink == nil {
		sink = Sinks{}
	}
	return &Watcher{device: device, sink: sink}
}

// LastUID returns the UID of the last NewCard event, if any.
func (w *Watcher) LastUID() (UID, bool) {
	if !w.seen {
		return nil, false
	}
	return w.last.Clone(), true
}

// PollOnce runs one cycle and returns its outcome. The card is halted after every
// cycle that managed to read it, and never otherwise.
func (w *Watcher) PollOnce() Event {
	if !w.device.IsNewCardPresent() {
		return Event{Outcome: Idle}
	}

	uid, sak, err := w.device.ReadCardSerial()
	if err != nil {
		log.Debugf("error when reading card serial: %v", err)
		return Event{Outcome: Idle}
	}
	defer w.release()

	e := w.decide(uid, Classify(sak))
	log.Debugf("Card %v (%v): %v", e.UID, e.Type, e.Outcome)
	if err := w.sink.Handle(e); err != nil {
		log.Warnf("could not handle %v event: %v", e.Outcome, err)
	}
	return e
}

func (w *Watcher) decide(uid UID, t PiccType) Event {
	e := Event{UID: uid.Clone(), Type: t}
	switch {
	case !t.IsClassic():
		e.Outcome = UnsupportedTag
	case !w.seen || !w.last.Equal(uid):
		w.last = uid.Clone()
		w.seen = true
		e.Outcome = NewCard
	default:
		e.Outcome = RepeatCard
	}
	return e
}

func (w *Watcher) release() {
	if err := w.device.Halt(); err != nil {
		log.Debugf("error when halting card: %v", err)
	}
}

// Run polls every interval until stop is closed. A started cycle always runs to
// completion.
func (w *Watcher) Run(interval time.Duration, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			log.Debugln("Watcher stopped. Returning.")
			return
		case <-time.After(interval):
			// just do another loop
		}
		w.PollOnce()
	}
}

// WaitForCard polls until a NewCard event shows up and returns it.
func (w *Watcher) WaitForCard(interval time.Duration, stop <-chan struct{}) (Event, error) {
	for {
		select {
		case <-stop:
			return Event{}, ErrStopped
		case <-time.After(interval):
		}
		if e := w.PollOnce(); e.Outcome == NewCard {
			return e, nil
		}
	}
}
