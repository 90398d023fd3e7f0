//go:build !pi
// +build !pi

package nfc

import (
	log "github.com/sirupsen/logrus"
)

type mockCard struct {
	uid UID
	sak byte
}

// The simulated reader shows this sequence of cards, each separated by a stretch
// of empty polls, and then starts over.
var mockCards = []mockCard{
	{UID{0x3A, 0x7C, 0x12, 0x5F}, 0x08},
	{UID{0x3A, 0x7C, 0x12, 0x5F}, 0x08},
	{UID{0x04, 0x9B, 0x21, 0xB2}, 0x00},
	{UID{0xC1, 0x05, 0xFA, 0x5F}, 0x18},
	{UID{0x3A, 0x7C, 0x12, 0x5F}, 0x08},
}

const mockGap = 30

// Open returns a simulated reader so the binary can run without the hardware.
func Open(cfg Config) (Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Infof("Started simulated MFRC522 (spi %q, reset %v, irq %v)", cfg.SPIPort, cfg.ResetPin, cfg.IRQPin)
	return &mockReader{}, nil
}

type mockReader struct {
	polls  int
	card   int
	active bool
}

func (m *mockReader) Close() error {
	return nil
}

func (m *mockReader) IsNewCardPresent() bool {
	m.polls++
	if m.active || m.polls%mockGap != 0 {
		return false
	}
	m.active = true
	return true
}

func (m *mockReader) ReadCardSerial() (UID, byte, error) {
	if !m.active {
		return nil, 0, ErrNoCard
	}
	c := mockCards[m.card%len(mockCards)]
	m.card++
	return c.uid.Clone(), c.sak, nil
}

func (m *mockReader) Halt() error {
	m.active = false
	return nil
}
