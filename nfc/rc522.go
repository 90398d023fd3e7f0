//go:build pi
// +build pi

package nfc

// MFRC522 spec can be found here: https://www.nxp.com/docs/en/data-sheet/MFRC522.pdf
// MIFARE Classic EV1 1K: https://www.nxp.com/docs/en/data-sheet/MF1S50YYX_V1.pdf

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/experimental/devices/mfrc522"
	"periph.io/x/periph/experimental/devices/mfrc522/commands"
	"periph.io/x/periph/host"
)

const (
	cascadeTag = 0x88
	sakCascade = 0x04
	// SAK plus CRC_A
	selectBits = 0x18
)

type rc522 struct {
	port spi.PortCloser
	dev  *mfrc522.Dev
}

// Open initializes periph, claims the SPI port and the two GPIO lines and resets the
// MFRC522 with the configured antenna gain.
func Open(cfg Config) (Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize periph: %w", err)
	}

	p, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("could not open SPI port %q: %w", cfg.SPIPort, err)
	}
	resetPin := gpioreg.ByName(cfg.ResetPin)
	if resetPin == nil {
		p.Close()
		return nil, fmt.Errorf("no reset pin named %q", cfg.ResetPin)
	}
	irqPin := gpioreg.ByName(cfg.IRQPin)
	if irqPin == nil {
		p.Close()
		return nil, fmt.Errorf("no IRQ pin named %q", cfg.IRQPin)
	}

	r, err := newRC522(p, resetPin, irqPin, cfg)
	if err != nil {
		p.Close()
		return nil, err
	}
	log.Infof("Started %s", r.dev.String())
	return r, nil
}

func newRC522(p spi.PortCloser, resetPin gpio.PinOut, irqPin gpio.PinIn, cfg Config) (*rc522, error) {
	// the driver connects at its rated 10MHz, so the limit has to be in place before.
	if cfg.SpeedHz > 0 {
		if err := p.LimitSpeed(physic.Frequency(cfg.SpeedHz) * physic.Hertz); err != nil {
			return nil, fmt.Errorf("could not limit SPI speed to %d Hz: %w", cfg.SpeedHz, err)
		}
	}

	dev, err := mfrc522.NewSPI(p, resetPin, irqPin)
	if err != nil {
		return nil, err
	}
	if err := dev.SetAntennaGain(cfg.AntennaGain); err != nil {
		dev.Halt()
		return nil, err
	}
	// The gain only reaches RFCfgReg on Init.
	if err := dev.LowLevel.Init(); err != nil {
		dev.Halt()
		return nil, err
	}
	return &rc522{port: p, dev: dev}, nil
}

func (r *rc522) Close() error {
	if err := r.dev.Halt(); err != nil {
		log.Debugf("error when shutting down reader: %v", err)
	}
	return r.port.Close()
}

func (r *rc522) IsNewCardPresent() bool {
	if err := r.dev.LowLevel.DevWrite(commands.BitFramingReg, 0x07); err != nil {
		log.Debugf("error when requesting card: %v", err)
		return false
	}
	_, backBits, err := r.dev.LowLevel.CardWrite(commands.PCD_TRANSCEIVE, []byte{commands.PICC_REQIDL})
	if err != nil {
		return false
	}
	// ATQA is two bytes.
	return backBits == 0x10
}

func (r *rc522) ReadCardSerial() (UID, byte, error) {
	if err := r.dev.LowLevel.DevWrite(commands.BitFramingReg, 0x00); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	data, _, err := r.dev.LowLevel.CardWrite(commands.PCD_TRANSCEIVE, []byte{commands.PICC_ANTICOLL, 0x20})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if len(data) != 5 {
		return nil, 0, fmt.Errorf("%w: back data expected 5, actual %d", ErrReadFailed, len(data))
	}

	bcc := byte(0)
	for _, v := range data[:4] {
		bcc ^= v
	}
	if bcc != data[4] {
		return nil, 0, fmt.Errorf("%w: BCC mismatch, expected %02x actual %02x", ErrReadFailed, bcc, data[4])
	}

	sak, err := r.selectTag(data)
	if err != nil {
		return nil, 0, err
	}
	if data[0] == cascadeTag {
		// Only cascade level 1 is resolved. The cascade bit makes such a card classify
		// as incomplete.
		sak |= sakCascade
	}
	return UID(data[:4]).Clone(), sak, nil
}

// selectTag sends SELECT for the serial (UID and BCC) and returns the SAK. Anything but
// a full SAK answer is a failed read.
func (r *rc522) selectTag(serial []byte) (byte, error) {
	buf := make([]byte, 0, len(serial)+4)
	buf = append(buf, commands.PICC_SElECTTAG, 0x70)
	buf = append(buf, serial...)
	crc, err := r.dev.LowLevel.CRC(buf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	buf = append(buf, crc...)

	back, backBits, err := r.dev.LowLevel.CardWrite(commands.PCD_TRANSCEIVE, buf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if backBits != selectBits || len(back) == 0 {
		return 0, fmt.Errorf("%w: SELECT answered with %d bits", ErrReadFailed, backBits)
	}
	return back[0], nil
}

func (r *rc522) Halt() error {
	buf := []byte{commands.PICC_HALT, 0x00}
	crc, err := r.dev.LowLevel.CRC(buf)
	if err != nil {
		return err
	}
	buf = append(buf, crc...)
	// a halted card stays silent, so only a reply would be a problem.
	if back, backBits, err := r.dev.LowLevel.CardWrite(commands.PCD_TRANSCEIVE, buf); err == nil && backBits > 8 {
		log.Debugf("card answered HLTA with %v bytes", len(back))
	}
	return r.dev.LowLevel.StopCrypto()
}
