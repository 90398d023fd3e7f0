package ui

import (
	"testing"
	"time"

	"github.com/callebjorkell/rc522-uid-logger/nfc"
	"github.com/stretchr/testify/assert"
)

type recordingLed struct {
	shown []Color
}

func (r *recordingLed) Show(c Color) {
	r.shown = append(r.shown, c)
}

func TestIndicator(t *testing.T) {
	tests := []struct {
		name    string
		outcome nfc.Outcome
		want    []Color
	}{
		{"new card", nfc.NewCard, []Color{Green, Off}},
		{"repeat card", nfc.RepeatCard, []Color{Yellow, Off}},
		{"unsupported", nfc.UnsupportedTag, []Color{Red, Off}},
		{"idle", nfc.Idle, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			led := &recordingLed{}
			var slept time.Duration
			i := NewIndicator(led)
			i.sleep = func(d time.Duration) { slept += d }

			assert.NoError(t, i.Handle(nfc.Event{Outcome: tc.outcome}))
			assert.Equal(t, tc.want, led.shown)
			if tc.want != nil {
				assert.Equal(t, FlashDuration, slept)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "Yellow", Yellow.String())
	assert.Equal(t, "Off", Color(12).String())
}
