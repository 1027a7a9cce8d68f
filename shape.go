package gc9d01

import (
	"image"

	"github.com/BeatGlow/gc9d01/draw"
	"github.com/BeatGlow/gc9d01/pixel"
)

// SetPixel draws one pixel through a single pixel window, it makes a Dev a
// [draw.Target].
func (d *Dev) SetPixel(x, y int, c pixel.CRGB16) error {
	if err := d.SetWindow(x, y, x, y); err != nil {
		return err
	}
	return d.WritePixel(c)
}

// DrawPixel draws a single pixel.
func (d *Dev) DrawPixel(x, y int, c pixel.CRGB16) error {
	return draw.Pixel(d, image.Pt(x, y), c)
}

// DrawLine draws a line from (x0,y0) to (x1,y1), both ends included.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c pixel.CRGB16) error {
	return draw.Line(d, image.Pt(x0, y0), image.Pt(x1, y1), c)
}

// DrawCircle draws the outline of a circle.
func (d *Dev) DrawCircle(x0, y0, r int, c pixel.CRGB16) error {
	return draw.Circle(d, image.Pt(x0, y0), r, c)
}

// DrawTriangle draws the outline of a triangle.
func (d *Dev) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c pixel.CRGB16) error {
	return draw.Triangle(d, image.Pt(x0, y0), image.Pt(x1, y1), image.Pt(x2, y2), c)
}

// DrawRect draws the outline of a width by height rectangle with its top left
// corner at (x0,y0). Width and height must be at least 1.
func (d *Dev) DrawRect(x0, y0, width, height int, c pixel.CRGB16) error {
	// Not image.Rect, which would canonicalize a degenerate size.
	rect := image.Rectangle{
		Min: image.Point{X: x0, Y: y0},
		Max: image.Point{X: x0 + width, Y: y0 + height},
	}
	return draw.Rectangle(d, rect, c)
}

var _ draw.Target = (*Dev)(nil)
