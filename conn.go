package gc9d01

import (
	"errors"
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	spiconn "github.com/BeatGlow/gc9d01/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("gc9d01: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("gc9d01: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
//
// Every call blocks until the bus transaction completed. Errors are fatal for
// the operation in progress, nothing is retried.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// SPIConfig describes the 4-wire SPI bus configuration.
type SPIConfig struct {
	// Port is the periph.io SPI port name, empty for the first available port.
	Port string

	// Speed is the maximum bus clock.
	Speed physic.Frequency

	// Mode is the SPI mode, the GC9D01 samples on the rising edge (mode 0).
	Mode spi.Mode

	// DataLow inverts the DC pin: data is sent with DC low.
	DataLow bool

	// BatchSize limits the size of a single bus transfer.
	BatchSize uint

	Reset gpio.PinOut
	DC    gpio.PinOut
	CS    gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed:     40 * physic.MegaHertz,
	Mode:      spi.Mode0,
	BatchSize: 4096,
	Reset:     gpioreg.ByName("GPIO25"),
	DC:        gpioreg.ByName("GPIO24"),
}

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	16 * physic.MegaHertz,
	20 * physic.MegaHertz,
	24 * physic.MegaHertz,
	32 * physic.MegaHertz,
	40 * physic.MegaHertz,
	48 * physic.MegaHertz,
	50 * physic.MegaHertz,
	62500 * physic.KiloHertz,
	66 * physic.MegaHertz,
}

type spiConn struct {
	bus       conn.Conn
	closer    io.Closer
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcValid   bool
	cs        gpio.PinOut
	dataLow   bool
	batchSize uint
}

// OpenSPI opens the SPI port and GPIO pins described by config. A nil config
// uses DefaultSPIConfig.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.Speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("gc9d01: invalid SPI speed %s", config.Speed)
	}

	if err := validatePins(config); err != nil {
		return nil, err
	}

	bus, err := spiconn.OpenSPI(config.Port, config.Speed, config.Mode)
	if err != nil {
		return nil, err
	}
	return newSPIConn(bus, bus, config)
}

func validatePins(config *SPIConfig) error {
	if config.Reset == nil || config.Reset == gpio.INVALID {
		return ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return ErrDCPin
	}
	return nil
}

func newSPIConn(bus conn.Conn, closer io.Closer, config *SPIConfig) (*spiConn, error) {
	if err := validatePins(config); err != nil {
		return nil, err
	}
	c := &spiConn{
		bus:       bus,
		closer:    closer,
		batchSize: config.BatchSize,
		dataLow:   config.DataLow,
		reset:     config.Reset,
		dc:        config.DC,
		cs:        config.CS,
	}
	if c.batchSize == 0 {
		c.batchSize = DefaultSPIConfig.BatchSize
	}
	if c.cs == gpio.INVALID {
		c.cs = nil
	}
	return c, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcValid = true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, data ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	if err = c.bus.Tx([]byte{cmnd}, nil); err != nil {
		return
	}
	if len(data) > 0 {
		if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
			return
		}
		if err = c.writeChunked(data); err != nil {
			return
		}
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if len(data) <= int(c.batchSize) {
		return c.bus.Tx(data, nil)
	}

	if debug {
		log.Printf("gc9d01: write %d bytes of data in %d chunks", len(data), (len(data)+int(c.batchSize)-1)/int(c.batchSize))
	}
	buffer := data
	for len(buffer) > 0 {
		n := min(len(buffer), int(c.batchSize))
		if err = c.bus.Tx(buffer[:n], nil); err != nil {
			return
		}
		buffer = buffer[n:]
	}
	return
}
