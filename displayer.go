package gc9d01

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/BeatGlow/gc9d01/pixel"
)

// Displayer adapts a Dev to the TinyGo drivers.Displayer interface, so the
// TinyGo font and graphics packages can draw on the panel.
//
// Pixels are written immediately. SetPixel can not report bus errors, the
// first one is kept and returned by the next call to Display.
type Displayer struct {
	d   *Dev
	err error
}

// Displayer returns a drivers.Displayer drawing on d.
func (d *Dev) Displayer() *Displayer {
	return &Displayer{d: d}
}

func (p *Displayer) Size() (x, y int16) {
	w, h := p.d.size()
	return int16(w), int16(h)
}

// SetPixel draws one pixel, pixels outside the panel are ignored.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if p.err != nil {
		return
	}
	if w, h := p.d.size(); x < 0 || y < 0 || int(x) >= w || int(y) >= h {
		return
	}
	p.err = p.d.SetPixel(int(x), int(y), pixel.RGB(c.R, c.G, c.B))
}

// Display returns and clears the first error since the previous call.
func (p *Displayer) Display() error {
	err := p.err
	p.err = nil
	return err
}

// WriteText draws s with a TinyGo font, with the baseline of the first line at
// y. Newlines start a new line at x.
func (d *Dev) WriteText(x, y int, f tinyfont.Fonter, s string, c pixel.CRGB16) error {
	p := d.Displayer()
	r, g, b, _ := c.RGBA()
	tinyfont.WriteLine(p, f, int16(x), int16(y), s, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF})
	return p.Display()
}

var _ drivers.Displayer = (*Displayer)(nil)
