package nfc

// PiccType is the card family derived from the SAK byte of a SELECT answer.
type PiccType int

const (
	PiccUnknown PiccType = iota
	PiccISO14443_4
	PiccISO18092
	PiccMifareMini
	PiccMifare1K
	PiccMifare4K
	PiccMifareUltralight
	PiccMifarePlus
	PiccTNP3XXX
	PiccNotComplete
)

var piccNames = map[PiccType]string{
	PiccUnknown:          "Unknown type",
	PiccISO14443_4:       "PICC compliant with ISO/IEC 14443-4",
	PiccISO18092:         "PICC compliant with ISO/IEC 18092 (NFC)",
	PiccMifareMini:       "MIFARE Mini, 320 bytes",
	PiccMifare1K:         "MIFARE 1KB",
	PiccMifare4K:         "MIFARE 4KB",
	PiccMifareUltralight: "MIFARE Ultralight or Ultralight C",
	PiccMifarePlus:       "MIFARE Plus",
	PiccTNP3XXX:          "MIFARE TNP3XXX",
	PiccNotComplete:      "SAK indicates UID is not complete.",
}

func (p PiccType) String() string {
	if n, ok := piccNames[p]; ok {
		return n
	}
	return piccNames[PiccUnknown]
}

// IsClassic is true for the three MIFARE Classic variants.
func (p PiccType) IsClassic() bool {
	return p == PiccMifareMini || p == PiccMifare1K || p == PiccMifare4K
}

// Classify maps a SAK byte to a card family. Bit 8 is reserved for future use
// and gets masked away.
func Classify(sak byte) PiccType {
	sak &= 0x7F
	switch sak {
	case 0x04:
		return PiccNotComplete
	case 0x09:
		return PiccMifareMini
	case 0x08:
		return PiccMifare1K
	case 0x18:
		return PiccMifare4K
	case 0x00:
		return PiccMifareUltralight
	case 0x10, 0x11:
		return PiccMifarePlus
	case 0x01:
		return PiccTNP3XXX
	case 0x20:
		return PiccISO14443_4
	case 0x40:
		return PiccISO18092
	default:
		return PiccUnknown
	}
}
