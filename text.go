package gc9d01

import (
	"fmt"

	"github.com/BeatGlow/gc9d01/font"
	"github.com/BeatGlow/gc9d01/pixel"
)

// MaxTextLength is the number of bytes Printf renders at most.
const MaxTextLength = 127

// Cursor is the text position and style used by the text functions. Only X
// and Y are updated while rendering.
type Cursor struct {
	X, Y int

	// Font is the glyph set, Font6x13 if nil.
	Font *font.Font

	// Color of the foreground pixels, the background is black.
	Color pixel.CRGB16

	// CharSpacing is the number of columns between characters.
	CharSpacing int

	// LineSpacing is the number of lines between text lines.
	LineSpacing int
}

// NewCursor returns a cursor at (x, y) with white 6x13 text.
func NewCursor(x, y int) *Cursor {
	return &Cursor{
		X:           x,
		Y:           y,
		Font:        font.Font6x13,
		Color:       pixel.White,
		CharSpacing: 1,
		LineSpacing: 1,
	}
}

func (cur *Cursor) font() *font.Font {
	if cur.Font == nil {
		return font.Font6x13
	}
	return cur.Font
}

// newline moves the cursor to the start of the next text line, or back to the
// top when the line would not fit.
func (d *Dev) newline(cur *Cursor) {
	var (
		h         = cur.font().Height
		_, height = d.size()
	)
	cur.X = 0
	cur.Y += h + cur.LineSpacing
	if cur.Y+h > height {
		cur.Y = 0
	}
}

// PutChar renders c at the cursor and advances it. A newline moves to the next
// line; characters outside the printable ASCII range are skipped.
func (d *Dev) PutChar(cur *Cursor, c byte) error {
	f := cur.font()
	if c == '\n' {
		d.newline(cur)
		return nil
	}
	if width, _ := d.size(); cur.X+f.Width+cur.CharSpacing > width {
		d.newline(cur)
	}

	glyph, ok := f.Glyph(int(c))
	if !ok {
		return nil
	}
	if err := d.SetWindow(cur.X, cur.Y, cur.X+f.Width-1, cur.Y+f.Height-1); err != nil {
		return err
	}
	if err := font.Walk(glyph, f.Width, func(on bool) error {
		if on {
			return d.WritePixel(cur.Color)
		}
		return d.WritePixel(pixel.Black)
	}); err != nil {
		return err
	}

	cur.X += f.Width + cur.CharSpacing
	return nil
}

// Print renders the first MaxTextLength bytes of s.
func (d *Dev) Print(cur *Cursor, s string) error {
	if len(s) > MaxTextLength {
		s = s[:MaxTextLength]
	}
	for i := 0; i < len(s); i++ {
		if err := d.PutChar(cur, s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Printf formats according to a format specifier and renders the result. The
// formatted text is silently truncated to MaxTextLength bytes.
func (d *Dev) Printf(cur *Cursor, format string, args ...any) error {
	var s string
	if d.printer != nil {
		s = d.printer.Sprintf(format, args...)
	} else {
		s = fmt.Sprintf(format, args...)
	}
	return d.Print(cur, s)
}

// DrawCJK renders glyph index of table into the 16x16 cell at (x, y). An index
// outside the table draws nothing.
func (d *Dev) DrawCJK(x, y int, c pixel.CRGB16, table []font.CJK, index int) error {
	if index < 0 || index >= len(table) {
		return nil
	}
	if err := d.SetWindow(x, y, x+font.CJKWidth-1, y+font.CJKHeight-1); err != nil {
		return err
	}
	return font.WalkCJK(&table[index], func(on bool) error {
		if on {
			return d.WritePixel(c)
		}
		return d.WritePixel(pixel.Black)
	})
}
