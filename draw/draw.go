// Package draw rasterizes geometric primitives into single pixel writes.
//
// The algorithms are integer only and emit pixels in a fixed order, so the
// exact byte stream sent to a panel is reproducible. Shapes are outlines;
// nothing is filled.
package draw

import (
	"image/draw"

	"github.com/BeatGlow/gc9d01/pixel"
)

// Target receives the pixels produced by the rasterizer.
type Target interface {
	// SetPixel writes one pixel. A non-nil error aborts the primitive being drawn.
	SetPixel(x, y int, c pixel.CRGB16) error
}

// TargetFunc is an adapter to allow the use of ordinary functions as a Target.
type TargetFunc func(x, y int, c pixel.CRGB16) error

func (f TargetFunc) SetPixel(x, y int, c pixel.CRGB16) error {
	return f(x, y, c)
}

// Image adapts an [image/draw.Image] to a Target. Out of bounds pixels are
// handled by the image, usually by ignoring them.
type Image struct {
	draw.Image
}

func (i Image) SetPixel(x, y int, c pixel.CRGB16) error {
	i.Image.Set(x, y, c)
	return nil
}
