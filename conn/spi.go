// Package conn opens the serial buses used to talk to display controllers.
package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI is a write oriented SPI connection, 8 bits per word.
type SPI struct {
	port  spi.PortCloser
	conn  spi.Conn
	mode  spi.Mode
	speed physic.Frequency
}

// OpenSPI opens the named SPI port, use an empty name for the first available
// port. The port is connected at the requested speed and mode; periph.io
// only allows this once per port.
func OpenSPI(name string, speed physic.Frequency, mode spi.Mode) (*SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(speed, mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("conn: SPI connect at %s mode %s: %w", speed, mode, err)
	}

	return &SPI{
		port:  port,
		conn:  c,
		mode:  mode,
		speed: speed,
	}, nil
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s mode=%s bits per word=8 max speed=%s", c.port, c.mode, c.speed)
}

func (c *SPI) Mode() spi.Mode {
	return c.mode
}

func (c *SPI) MaxSpeed() physic.Frequency {
	return c.speed
}

// Tx implements [conn.Conn].
func (c *SPI) Tx(w, r []byte) error {
	return c.conn.Tx(w, r)
}

// Duplex implements [conn.Conn].
func (c *SPI) Duplex() conn.Duplex {
	return c.conn.Duplex()
}

func (c *SPI) Write(b []byte) (n int, err error) {
	if err = c.conn.Tx(b, nil); err != nil {
		return 0, err
	}
	return len(b), nil
}

var _ conn.Conn = (*SPI)(nil)
