// Package sim emulates the GC9D01 controller memory interface in software.
//
// A Panel accepts the same command and data stream as the hardware and
// decodes the address and memory write commands into an image, which makes it
// usable as a bus fake in tests and as a preview on machines without a panel.
package sim

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/gc9d01/pixel"
)

var ErrBusFault = errors.New("sim: bus fault")

// Commands decoded by the panel.
const (
	DISPOFF = 0x28
	DISPON  = 0x29
	CASET   = 0x2A
	RASET   = 0x2B
	RAMWR   = 0x2C
	SLPOUT  = 0x11
)

// Command is a logged command with its arguments. Memory write data is not
// part of the arguments, it is logged as Writes.
type Command struct {
	Cmd  byte
	Args []byte
}

// Write is a pixel stored by a memory write, in panel coordinates.
type Write struct {
	X, Y int
	C    pixel.CRGB16
}

// Panel is an emulated GC9D01 panel.
type Panel struct {
	// ColumnOffset and RowOffset are subtracted from the received addresses.
	ColumnOffset, RowOffset int

	// Image holds the visible panel memory.
	Image *pixel.CRGB16Image

	Commands []Command
	Writes   []Write
	Resets   []gpio.Level

	On     bool
	Awake  bool
	Closed bool

	cmd        byte
	args       []byte
	x0, x1     int
	y0, y1     int
	x, y       int
	hi         byte
	odd        bool
	calls      int
	failAfter  int
	failEnable bool
}

// New returns a panel of width by height pixels.
func New(width, height int) *Panel {
	return &Panel{
		Image: pixel.NewCRGB16Image(width, height),
		x1:    width - 1,
		y1:    height - 1,
	}
}

// FailAfter makes every bus call after the next n calls fail with ErrBusFault.
func (p *Panel) FailAfter(n int) {
	p.calls = 0
	p.failAfter = n
	p.failEnable = true
}

// ResetLog clears the logs, keeping the image.
func (p *Panel) ResetLog() {
	p.Commands = nil
	p.Writes = nil
	p.Resets = nil
}

func (p *Panel) String() string {
	return fmt.Sprintf("simulated panel %dx%d", p.Image.Rect.Dx(), p.Image.Rect.Dy())
}

func (p *Panel) Close() error {
	p.Closed = true
	return nil
}

func (p *Panel) Reset(level gpio.Level) error {
	if err := p.fault(); err != nil {
		return err
	}
	p.Resets = append(p.Resets, level)
	if level == gpio.Low {
		p.On = false
		p.Awake = false
	}
	return nil
}

func (p *Panel) Command(cmnd byte, data ...byte) error {
	if err := p.fault(); err != nil {
		return err
	}
	p.cmd = cmnd
	p.args = p.args[:0]
	p.odd = false
	p.Commands = append(p.Commands, Command{Cmd: cmnd})

	switch cmnd {
	case DISPON:
		p.On = true
	case DISPOFF:
		p.On = false
	case SLPOUT:
		p.Awake = true
	case RAMWR:
		p.x, p.y = p.x0, p.y0
	}
	p.feed(data)
	return nil
}

func (p *Panel) Data(data ...byte) error {
	if err := p.fault(); err != nil {
		return err
	}
	p.feed(data)
	return nil
}

func (p *Panel) fault() error {
	if !p.failEnable {
		return nil
	}
	if p.calls >= p.failAfter {
		return ErrBusFault
	}
	p.calls++
	return nil
}

func (p *Panel) feed(data []byte) {
	if p.cmd != RAMWR {
		if len(data) == 0 || len(p.Commands) == 0 {
			return
		}
		p.args = append(p.args, data...)
		last := &p.Commands[len(p.Commands)-1]
		last.Args = append([]byte(nil), p.args...)
		switch {
		case p.cmd == CASET && len(p.args) == 4:
			p.x0 = (int(p.args[0])<<8 | int(p.args[1])) - p.ColumnOffset
			p.x1 = (int(p.args[2])<<8 | int(p.args[3])) - p.ColumnOffset
		case p.cmd == RASET && len(p.args) == 4:
			p.y0 = (int(p.args[0])<<8 | int(p.args[1])) - p.RowOffset
			p.y1 = (int(p.args[2])<<8 | int(p.args[3])) - p.RowOffset
		}
		return
	}

	for _, b := range data {
		if !p.odd {
			p.hi, p.odd = b, true
			continue
		}
		p.odd = false
		p.store(pixel.CRGB16{V: uint16(p.hi)<<8 | uint16(b)})
	}
}

// store writes c at the memory pointer and advances it through the window,
// wrapping back to the top left corner after the last pixel.
func (p *Panel) store(c pixel.CRGB16) {
	p.Image.SetCRGB16(p.x, p.y, c)
	p.Writes = append(p.Writes, Write{X: p.x, Y: p.y, C: c})
	if p.x++; p.x > p.x1 {
		p.x = p.x0
		if p.y++; p.y > p.y1 {
			p.y = p.y0
		}
	}
}

// Window returns the current address window, inclusive.
func (p *Panel) Window() (x0, y0, x1, y1 int) {
	return p.x0, p.y0, p.x1, p.y1
}

// At returns the pixel at (x, y).
func (p *Panel) At(x, y int) pixel.CRGB16 {
	return p.Image.CRGB16At(x, y)
}

// Lit returns the number of pixels in the image that are not black.
func (p *Panel) Lit() (n int) {
	r := p.Image.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if p.At(x, y).V != 0 {
				n++
			}
		}
	}
	return
}
