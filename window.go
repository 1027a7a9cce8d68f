package gc9d01

import (
	"log"

	"github.com/BeatGlow/gc9d01/pixel"
)

// SetWindow selects the inclusive rectangle (x0,y0)-(x1,y1) as the target of
// the following pixel writes and starts a memory write. The panel offsets are
// added to the coordinates, which are not clamped.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) (err error) {
	var (
		col, row = d.offset()
		c0       = x0 + col
		c1       = x1 + col
		r0       = y0 + row
		r1       = y1 + row
	)
	if debug {
		log.Printf("gc9d01: window columns %d-%d rows %d-%d", c0, c1, r0, r1)
	}
	if err = d.command(gc9d01CASET, byte(c0>>8), byte(c0), byte(c1>>8), byte(c1)); err != nil {
		return
	}
	if err = d.command(gc9d01RASET, byte(r0>>8), byte(r0), byte(r1>>8), byte(r1)); err != nil {
		return
	}
	return d.command(gc9d01RAMWR)
}

// WritePixel sends one pixel to the current window, high byte first.
func (d *Dev) WritePixel(c pixel.CRGB16) error {
	hi, lo := c.Bytes()
	return d.data(hi, lo)
}

// Blit streams pix into the width by height window at (x, y). The buffer must
// hold big endian RGB565 pixels in row major order; it is sent as is, without
// checking its length.
func (d *Dev) Blit(x, y, width, height int, pix []byte) error {
	if err := d.SetWindow(x, y, x+width-1, y+height-1); err != nil {
		return err
	}
	return d.data(pix...)
}

// Fill paints the whole panel with c.
func (d *Dev) Fill(c pixel.CRGB16) error {
	w, h := d.size()
	if err := d.SetWindow(0, 0, w-1, h-1); err != nil {
		return err
	}

	hi, lo := c.Bytes()
	row := make([]byte, w*2)
	for i := 0; i < len(row); i += 2 {
		row[i], row[i+1] = hi, lo
	}
	for y := 0; y < h; y++ {
		if err := d.data(row...); err != nil {
			return err
		}
	}
	return nil
}

// Clear paints the whole panel black.
func (d *Dev) Clear() error {
	return d.Fill(pixel.Black)
}
