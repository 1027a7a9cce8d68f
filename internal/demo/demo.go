// Package demo draws the test screen used by the command line tools.
package demo

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/gc9d01"
	"github.com/BeatGlow/gc9d01/font"
	"github.com/BeatGlow/gc9d01/pixel"
)

// Hanzi holds 中 and 田.
var Hanzi = []font.CJK{
	{
		0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0xFC, 0x3F,
		0x84, 0x21, 0x84, 0x21, 0x84, 0x21, 0x84, 0x21,
		0x84, 0x21, 0x84, 0x21, 0xFC, 0x3F, 0x80, 0x01,
		0x80, 0x01, 0x80, 0x01, 0x80, 0x01, 0x80, 0x01,
	},
	{
		0x00, 0x00, 0xFE, 0x7F, 0x82, 0x40, 0x82, 0x40,
		0x82, 0x40, 0x82, 0x40, 0x82, 0x40, 0xFE, 0x7F,
		0x82, 0x40, 0x82, 0x40, 0x82, 0x40, 0x82, 0x40,
		0x82, 0x40, 0x82, 0x40, 0xFE, 0x7F, 0x00, 0x00,
	},
}

// Gradient returns a w by h test image.
func Gradient(w, h, offset int) image.Image {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{
				R: uint8(x*0xFF/w + offset),
				G: uint8(y*0xFF/h - offset),
				B: uint8((x + y + offset) * 2),
				A: 0xFF,
			})
		}
	}
	return m
}

// Draw renders the test screen, with picture blitted in the lower right
// corner. A nil picture is replaced by a gradient.
func Draw(d *gc9d01.Dev, picture image.Image, frame int) error {
	r := d.Bounds()
	if err := d.Clear(); err != nil {
		return err
	}

	// Border and shapes.
	if err := d.DrawRect(0, 0, r.Dx(), r.Dy(), pixel.White); err != nil {
		return err
	}
	if err := d.DrawLine(2, 2, r.Dx()-3, r.Dy()-3, pixel.Blue); err != nil {
		return err
	}
	if err := d.DrawCircle(r.Dx()/2, r.Dy()/2, r.Dx()/4, pixel.Green); err != nil {
		return err
	}
	if err := d.DrawTriangle(r.Dx()/2, 20, 20, r.Dy()-20, r.Dx()-20, r.Dy()-20, pixel.Yellow); err != nil {
		return err
	}

	// Fixed cell text, then a proportional TinyGo font.
	cur := gc9d01.NewCursor(4, 4)
	if err := d.Printf(cur, "GC9D01 %dx%d\n", r.Dx(), r.Dy()); err != nil {
		return err
	}
	cur.X = 4
	cur.Color = pixel.Yellow
	if err := d.Printf(cur, "frame %d", frame); err != nil {
		return err
	}
	if err := d.WriteText(4, r.Dy()-8, &proggy.TinySZ8pt7b, "tinyfont", pixel.RGB(0x80, 0xC0, 0xFF)); err != nil {
		return err
	}

	for i := range Hanzi {
		if err := d.DrawCJK(4+i*(font.CJKWidth+2), 34, pixel.Red, Hanzi, i); err != nil {
			return err
		}
	}

	const size = 32
	if picture == nil {
		picture = Gradient(size, size, frame)
	}
	pic := pixel.FromImage(picture, size, size)
	return d.Blit(r.Dx()-size-4, r.Dy()-size-4, size, size, pic.Pix)
}
