// Package gc9d01 drives GC9D01 RGB565 LCD panels over a 4-wire SPI bus.
//
// There is no frame buffer: every drawing call opens a write window on the
// controller and streams the pixels for it straight over the bus. A Dev is not
// safe for concurrent use, callers sharing a panel must serialize all drawing
// on it, since interleaved windows corrupt the image without any error.
package gc9d01

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrSize = errors.New("gc9d01: invalid panel size")
)

const (
	DefaultWidth  = 160
	DefaultHeight = 160
)

// Registers.
const (
	gc9d01SLPOUT  = 0x11 // Sleep Out
	gc9d01DISPOFF = 0x28 // Display Off
	gc9d01DISPON  = 0x29 // Display On
	gc9d01CASET   = 0x2A // Column Address Set
	gc9d01RASET   = 0x2B // Row Address Set
	gc9d01RAMWR   = 0x2C // Memory Write
	gc9d01TEOFF   = 0x34 // Tearing Effect Line Off
	gc9d01MADCTL  = 0x36 // Memory Data Access Control
	gc9d01COLMOD  = 0x3A // Interface Pixel Format
	gc9d01IRE1    = 0xFE // Inter Register Enable 1
	gc9d01IRE2    = 0xEF // Inter Register Enable 2
)

// Config is the panel configuration. Size and offsets describe the panel
// without rotation.
type Config struct {
	// Width is the number of columns, defaults to DefaultWidth.
	Width int

	// Height is the number of lines, defaults to DefaultHeight.
	Height int

	// ColumnOffset is added to every column address.
	ColumnOffset int

	// RowOffset is added to every row address.
	RowOffset int

	// Rotation of the panel, applied by Init.
	Rotation Rotation

	// Language selects locale aware formatting for Printf. The zero value
	// formats like package fmt.
	Language language.Tag

	// Backlight pin, optional.
	Backlight gpio.PinOut
}

// Dev is a handle to one GC9D01 panel.
type Dev struct {
	c         Conn
	width     int
	height    int
	colOffset int
	rowOffset int
	rotation  Rotation
	backlight gpio.PinOut
	printer   *message.Printer
}

// New returns a Dev for a panel that is already initialized. Nothing is sent
// over c. A nil config uses the default panel size without offsets.
func New(c Conn, config *Config) (*Dev, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width < 0 || config.Height < 0 || config.Width > 0xFFFF || config.Height > 0xFFFF {
		return nil, fmt.Errorf("%w %dx%d", ErrSize, config.Width, config.Height)
	}

	d := &Dev{
		c:         c,
		width:     config.Width,
		height:    config.Height,
		colOffset: config.ColumnOffset,
		rowOffset: config.RowOffset,
		backlight: config.Backlight,
	}
	if d.width == 0 {
		d.width = DefaultWidth
	}
	if d.height == 0 {
		d.height = DefaultHeight
	}
	d.rotation = config.Rotation & 3
	if config.Language != language.Und {
		d.printer = message.NewPrinter(config.Language)
	}
	return d, nil
}

// Open returns a Dev after running the power-on sequence on the panel.
func Open(c Conn, config *Config) (*Dev, error) {
	d, err := New(c, config)
	if err != nil {
		return nil, err
	}
	if err = d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	w, h := d.size()
	return fmt.Sprintf("GC9D01 %dx%d", w, h)
}

// Bounds is the panel bounding box at the current rotation.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.size()
	return image.Rect(0, 0, w, h)
}

// size is the number of columns and lines at the current rotation.
func (d *Dev) size() (w, h int) {
	if d.rotation.swapsAxes() {
		return d.height, d.width
	}
	return d.width, d.height
}

// offset is the column and row address offset at the current rotation.
func (d *Dev) offset() (col, row int) {
	if d.rotation.swapsAxes() {
		return d.rowOffset, d.colOffset
	}
	return d.colOffset, d.rowOffset
}

func (d *Dev) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *Dev) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *Dev) commands(commands [][]byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

// initSequence is the vendor power-on register table.
var initSequence = [][]byte{
	{gc9d01IRE1},
	{gc9d01IRE2},
	{0x80, 0xFF},
	{0x81, 0xFF},
	{0x82, 0xFF},
	{0x83, 0xFF},
	{0x84, 0xFF},
	{0x85, 0xFF},
	{0x86, 0xFF},
	{0x87, 0xFF},
	{0x88, 0xFF},
	{0x89, 0xFF},
	{0x8A, 0xFF},
	{0x8B, 0xFF},
	{0x8C, 0xFF},
	{0x8D, 0xFF},
	{0x8E, 0xFF},
	{0x8F, 0xFF},
	{gc9d01COLMOD, 0x05}, // 16-bits per pixel
	{0xEC, 0x01},
	{0x74, 0x02, 0x0E, 0x00, 0x00, 0x00, 0x00, 0x00},
	{0x98, 0x3E},
	{0x99, 0x3E},
	{0xB5, 0x0D, 0x0D},
	{0x60, 0x38, 0x0F, 0x79, 0x67},
	{0x61, 0x38, 0x11, 0x79, 0x67},
	{0x64, 0x38, 0x17, 0x71, 0x5F, 0x79, 0x67},
	{0x65, 0x38, 0x13, 0x71, 0x5B, 0x79, 0x67},
	{0x6A, 0x00, 0x00},
	{0x6C, 0x22, 0x02, 0x22, 0x02, 0x22, 0x22, 0x50},
	{0x6E,
		0x03, 0x03, 0x01, 0x01, 0x00, 0x00, 0x0F, 0x0F,
		0x0D, 0x0D, 0x0B, 0x0B, 0x09, 0x09, 0x00, 0x00,
		0x00, 0x00, 0x0A, 0x0A, 0x0C, 0x0C, 0x0E, 0x0E,
		0x10, 0x10, 0x00, 0x00, 0x02, 0x02, 0x04, 0x04,
	},
	{0xBF, 0x01},
	{0xF9, 0x40},
	{0x9B, 0x3B},
	{0x93, 0x33, 0x7F, 0x00},
	{0x7E, 0x30},
	{0x70, 0x0D, 0x02, 0x08, 0x0D, 0x02, 0x08},
	{0x71, 0x0D, 0x02, 0x08},
	{0x91, 0x0E, 0x09},
	{0xC3, 0x18},
	{0xC4, 0x18},
	{0xC9, 0x3C},
	{0xF0, 0x13, 0x15, 0x04, 0x05, 0x01, 0x38}, // gamma
	{0xF2, 0x13, 0x15, 0x04, 0x05, 0x01, 0x34},
	{0xF1, 0x4B, 0xB8, 0x7B, 0x34, 0x35, 0xEF},
	{0xF3, 0x47, 0xB4, 0x72, 0x34, 0x35, 0xDA},
	{gc9d01MADCTL, 0x00},
	{0xB4, 0x00, 0x00},
	{gc9d01TEOFF},
	{gc9d01SLPOUT},
}

// sleep is replaced in tests.
var sleep = time.Sleep

// Init resets the panel, loads the power-on register table and turns the
// display on. It must complete before any drawing.
func (d *Dev) Init() (err error) {
	if debug {
		log.Printf("gc9d01: init %dx%d offset (%d,%d) rotation %s over %s", d.width, d.height, d.colOffset, d.rowOffset, d.rotation, d.c)
	}

	if d.backlight != nil {
		if err = d.backlight.Out(gpio.High); err != nil {
			return fmt.Errorf("gc9d01: backlight on: %w", err)
		}
	} else if debug {
		log.Println("gc9d01: no backlight control")
	}

	// reset the device.
	if err = d.c.Reset(gpio.Low); err != nil {
		return fmt.Errorf("gc9d01: reset low: %w", err)
	}
	sleep(10 * time.Millisecond)
	if err = d.c.Reset(gpio.High); err != nil {
		return fmt.Errorf("gc9d01: reset high: %w", err)
	}
	sleep(120 * time.Millisecond)

	if err = d.commands(initSequence); err != nil {
		return fmt.Errorf("gc9d01: init sequence: %w", err)
	}
	sleep(120 * time.Millisecond)

	// The register table leaves the panel unrotated.
	if d.rotation != NoRotation {
		if err = d.SetRotation(d.rotation); err != nil {
			return fmt.Errorf("gc9d01: rotation: %w", err)
		}
	}

	return d.Show(true)
}

// Show toggles the display on or off.
func (d *Dev) Show(show bool) error {
	var command = byte(gc9d01DISPOFF)
	if show {
		command = byte(gc9d01DISPON)
	}
	return d.command(command)
}

// SetBacklight dims the backlight with PWM, 0xFF is full brightness. It is a
// no-op without a backlight pin.
func (d *Dev) SetBacklight(level uint8) error {
	if d.backlight == nil {
		return nil
	}
	const (
		step = gpio.DutyMax / 0xFF
		rate = 2 * physic.KiloHertz
	)
	if debug {
		log.Printf("gc9d01: backlight duty cycle to %s at %s", step*gpio.Duty(level), rate)
	}
	return d.backlight.PWM(step*gpio.Duty(level), rate)
}

// Close turns the display off and closes the connection.
func (d *Dev) Close() error {
	if err := d.Show(false); err != nil {
		_ = d.c.Close()
		return err
	}
	return d.c.Close()
}
