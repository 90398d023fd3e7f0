package nfc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexBytes(t *testing.T) {
	assert.Equal(t, " 05", HexBytes([]byte{0x05}))
	assert.Equal(t, " FA", HexBytes([]byte{0xFA}))
	assert.Equal(t, " 3A 7C 12 5F", HexBytes(cardA))
	assert.Equal(t, "", HexBytes(nil))
}

func TestDecBytes(t *testing.T) {
	assert.Equal(t, " 95", DecBytes([]byte{95}))
	assert.Equal(t, " 5", DecBytes([]byte{5}))
	assert.Equal(t, " 58 124 18 95", DecBytes(cardA))
}

func TestConsole(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			"idle",
			Event{Outcome: Idle},
			"",
		},
		{
			"new card",
			Event{Outcome: NewCard, UID: cardA, Type: PiccMifare1K},
			"PICC type: MIFARE 1KB\n" +
				"A new card has been detected.\n" +
				"The NUID tag is:\n" +
				"In hex:  3A 7C 12 5F\n" +
				"In dec:  58 124 18 95\n" +
				"\n",
		},
		{
			"repeat card",
			Event{Outcome: RepeatCard, UID: cardA, Type: PiccMifare4K},
			"PICC type: MIFARE 4KB\nCard read previously.\n",
		},
		{
			"unsupported",
			Event{Outcome: UnsupportedTag, UID: cardB, Type: PiccMifareUltralight},
			"PICC type: MIFARE Ultralight or Ultralight C\nYour tag is not of type MIFARE Classic.\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			assert.NoError(t, NewConsole(&b).Handle(tc.event))
			assert.Equal(t, tc.want, b.String())
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("port closed")
}

func TestConsoleWriteError(t *testing.T) {
	err := NewConsole(brokenWriter{}).Handle(Event{Outcome: RepeatCard})
	assert.EqualError(t, err, "port closed")
}
