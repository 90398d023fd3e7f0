package nfc

import (
	"fmt"
	"io"
	"strings"
)

// Console writes events as plain text lines.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Handle(e Event) error {
	if e.Outcome == Idle {
		return nil
	}
	lines := []string{"PICC type: " + e.Type.String()}
	switch e.Outcome {
	case UnsupportedTag:
		lines = append(lines, "Your tag is not of type MIFARE Classic.")
	case NewCard:
		lines = append(lines,
			"A new card has been detected.",
			"The NUID tag is:",
			"In hex: "+HexBytes(e.UID),
			"In dec: "+DecBytes(e.UID),
			"",
		)
	case RepeatCard:
		lines = append(lines, "Card read previously.")
	}
	_, err := io.WriteString(c.out, strings.Join(lines, "\n")+"\n")
	return err
}

// HexBytes renders every byte as a space followed by two upper case hex digits.
func HexBytes(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, " %02X", v)
	}
	return sb.String()
}

// DecBytes renders every byte as a space followed by its unpadded decimal value.
func DecBytes(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, " %d", v)
	}
	return sb.String()
}
