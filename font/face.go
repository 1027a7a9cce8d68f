package font

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font6x13 is the default font, derived from the 7x13 face in
// golang.org/x/image/font/basicfont. The cell drops the blank advance column,
// a character spacing of 1 restores it.
var Font6x13 = mustFromFace(basicfont.Face7x13, 6, 13)

// FromFace rasterizes the printable ASCII range of face into a width by height
// Font. The baseline sits at the face ascent; pixels outside the cell are
// clipped and mask coverage of 50% or more lights a pixel.
func FromFace(face xfont.Face, width, height int) (*Font, error) {
	if width <= 0 || width > MaxWidth || height <= 0 {
		return nil, ErrSize
	}

	var (
		f      = &Font{Width: width, Height: height}
		size   = f.BytesPerGlyph()
		ascent = face.Metrics().Ascent.Ceil()
		dot    = fixed.P(0, ascent)
	)
	f.Data = make([]byte, size*NumGlyphs)

	for code := FirstCode; code <= LastCode; code++ {
		dr, mask, mp, _, ok := face.Glyph(dot, rune(code))
		if !ok {
			continue
		}
		glyph := f.Data[(code-FirstCode)*size:][:size]
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= height {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= width {
					continue
				}
				_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					setBit(glyph, width, x, y)
				}
			}
		}
	}
	return f, nil
}

func mustFromFace(face xfont.Face, width, height int) *Font {
	f, err := FromFace(face, width, height)
	if err != nil {
		panic(err)
	}
	return f
}
