package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/rc522-uid-logger/nfc"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app   = kingpin.New("rc522-uid-logger", "Logs the UID of MIFARE Classic cards shown to an MFRC522 reader, skipping a card that was just logged.")
	start = app.Command("start", "Start polling the reader and log every card that is shown.")
	read  = app.Command("read", "Wait for a single MIFARE Classic card, print its UID and exit.")

	spiPort  = app.Flag("spi", "SPI port the reader is wired to. Leave empty for the first port.").Default("").String()
	resetPin = app.Flag("reset-pin", "GPIO connected to the RST pin of the reader.").Default("GPIO25").String()
	irqPin   = app.Flag("irq-pin", "GPIO connected to the IRQ pin of the reader.").Default("GPIO24").String()
	speed    = app.Flag("speed", "SPI clock speed in Hz.").Default("1000000").Int64()
	gain     = app.Flag("gain", "Antenna gain, from 0 (18 dB) to 7 (48 dB).").Default("4").Int()
	interval = app.Flag("interval", "Time between two polls of the reader.").Default("100ms").Duration()

	consolePort = app.Flag("console", "Serial device to write the card log to. Leave empty for stdout.").String()
	baud        = app.Flag("baud", "Baud rate of the serial console.").Default("9600").Int()

	led      = app.Flag("led", "Flash a status LED for every card.").Bool()
	ledRed   = app.Flag("led-red", "GPIO of the red LED.").Default("GPIO6").String()
	ledGreen = app.Flag("led-green", "GPIO of the green LED.").Default("GPIO5").String()
	ledBlue  = app.Flag("led-blue", "GPIO of the blue LED.").Default("GPIO13").String()

	debug = app.Flag("debug", "Enable debug logging.").Bool()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg := readerConfig()
	if err := cfg.Validate(); err != nil {
		app.FatalUsage("%v\n", err)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	stop := stopOnSignal(signalChan, func() {
		// a second signal kills the process if a cycle is stuck
		signal.Stop(signalChan)
	})

	runCommand(cmd, cfg, stop)
}

// stopOnSignal closes the returned channel on the first signal and then calls release.
func stopOnSignal(signals <-chan os.Signal, release func()) <-chan struct{} {
	stop := make(chan struct{})
	go func() {
		<-signals
		log.Debugln("Signal received, stopping.")
		close(stop)
		release()
	}()
	return stop
}

func runCommand(cmd string, cfg nfc.Config, stop <-chan struct{}) {
	switch cmd {
	case start.FullCommand():
		startWatching(cfg, stop)
	case read.FullCommand():
		readSingleCard(cfg, stop)
	default:
		app.FatalUsage("Unrecognized command\n")
	}
}

func readerConfig() nfc.Config {
	return nfc.Config{
		SPIPort:     *spiPort,
		ResetPin:    *resetPin,
		IRQPin:      *irqPin,
		SpeedHz:     *speed,
		AntennaGain: *gain,
	}
}

func openReader(cfg nfc.Config) nfc.Device {
	reader, err := nfc.Open(cfg)
	if err != nil {
		log.Fatalf("Could not initialize the reader: %v", err)
	}
	return reader
}
