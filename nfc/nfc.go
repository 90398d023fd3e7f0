package nfc

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
)

var (
	ErrNoCard      = errors.New("no card detected")
	ErrReadFailed  = errors.New("could not read card serial")
	ErrStopped     = errors.New("watcher stopped")
	ErrInvalidGain = errors.New("antenna gain must be between 0 and 7")
)

// Config holds the start time settings for a reader. The SPI port carries the
// MOSI, MISO, SCK and CS wiring; reset and IRQ are plain GPIO lines.
type Config struct {
	SPIPort     string
	ResetPin    string
	IRQPin      string
	SpeedHz     int64
	AntennaGain int
}

func (c Config) Validate() error {
	if c.AntennaGain < 0 || c.AntennaGain > 7 {
		return ErrInvalidGain
	}
	return nil
}

// Device is the capability set the watcher needs from a card reader.
type Device interface {
	io.Closer
	// IsNewCardPresent reports whether a card in idle state answered a request.
	IsNewCardPresent() bool
	// ReadCardSerial selects the card and returns its UID together with the SAK byte.
	ReadCardSerial() (UID, byte, error)
	// Halt puts the selected card to sleep and drops any authentication. Calling it
	// without an active card is harmless.
	Halt() error
}

// UID is the serial number of a card, 4, 7 or 10 bytes long.
type UID []byte

// Equal compares byte by byte. UIDs of different lengths are never equal.
func (u UID) Equal(o UID) bool {
	return len(u) == len(o) && bytes.Equal(u, o)
}

func (u UID) Clone() UID {
	if u == nil {
		return nil
	}
	c := make(UID, len(u))
	copy(c, u)
	return c
}

func (u UID) String() string {
	return hex.EncodeToString(u)
}
