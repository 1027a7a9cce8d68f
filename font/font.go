// Package font decodes the packed bitmap fonts drawn by the GC9D01 text engine.
//
// A Font holds the glyphs for the printable ASCII range 32 to 127, all sharing
// the same cell size. Each glyph is stored row by row:
//
//   - cells up to 8 pixels wide use one byte per row, bit 0 is the leftmost pixel;
//   - cells 9 to 16 pixels wide use two bytes per row, the even byte holds the
//     first 8 pixels and the odd byte holds the remaining Width-8 pixels.
//
// Bits are always consumed least significant first.
package font

import "errors"

// Printable code range covered by a Font.
const (
	FirstCode = 32
	LastCode  = 127
	NumGlyphs = LastCode - FirstCode + 1
)

// MaxWidth is the widest cell the two byte row layout can describe.
const MaxWidth = 16

var ErrSize = errors.New("font: glyph cell must be 1 to 16 pixels wide and at least 1 pixel high")

// Font is an immutable fixed cell bitmap font.
type Font struct {
	// Data holds NumGlyphs glyphs of BytesPerGlyph bytes each.
	Data []byte

	// Width of a glyph cell in pixels.
	Width int

	// Height of a glyph cell in pixels.
	Height int
}

// BytesPerGlyph is the size of one packed glyph.
func (f *Font) BytesPerGlyph() int {
	return (f.Width + 7) / 8 * f.Height
}

// Glyph returns the packed bitmap for code. It returns false for codes outside
// the printable range, or if Data is too short to hold the glyph.
func (f *Font) Glyph(code int) ([]byte, bool) {
	if code < FirstCode || code > LastCode {
		return nil, false
	}
	size := f.BytesPerGlyph()
	offset := (code - FirstCode) * size
	if offset+size > len(f.Data) {
		return nil, false
	}
	return f.Data[offset : offset+size], true
}

// rowBits is the number of pixels byte i of a glyph contributes.
func rowBits(width, i int) int {
	if width <= 8 {
		return width
	}
	if i%2 == 0 {
		return 8
	}
	return width - 8
}

// Walk calls fn for every pixel of glyph in raster order, passing true for
// foreground pixels. Walk stops at the first error returned by fn.
func Walk(glyph []byte, width int, fn func(on bool) error) error {
	for i, b := range glyph {
		for bit, n := 0, rowBits(width, i); bit < n; bit++ {
			if err := fn(b&(1<<bit) != 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unpack expands glyph into width*height pixel decisions in raster order.
func Unpack(glyph []byte, width int) []bool {
	out := make([]bool, 0, len(glyph)*8)
	_ = Walk(glyph, width, func(on bool) error {
		out = append(out, on)
		return nil
	})
	return out
}

// setBit marks pixel (x, y) in a packed glyph.
func setBit(glyph []byte, width, x, y int) {
	if width <= 8 {
		glyph[y] |= 1 << x
		return
	}
	if x < 8 {
		glyph[2*y] |= 1 << x
	} else {
		glyph[2*y+1] |= 1 << (x - 8)
	}
}
