package gc9d01_test

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/BeatGlow/gc9d01"
	"github.com/BeatGlow/gc9d01/font"
	"github.com/BeatGlow/gc9d01/pixel"
	"github.com/BeatGlow/gc9d01/sim"
)

var testCJK = []font.CJK{
	{
		0x01, 0x80, 0x02, 0x40, 0x04, 0x20, 0x08, 0x10,
		0x10, 0x08, 0x20, 0x04, 0x40, 0x02, 0x80, 0x01,
		0x80, 0x01, 0x40, 0x02, 0x20, 0x04, 0x10, 0x08,
		0x08, 0x10, 0x04, 0x20, 0x02, 0x40, 0xFF, 0xFF,
	},
	{0xAA, 0xAA},
}

func countRAMWR(p *sim.Panel) (n int) {
	for _, c := range p.Commands {
		if c.Cmd == sim.RAMWR {
			n++
		}
	}
	return
}

func TestNewCursor(t *testing.T) {
	cur := gc9d01.NewCursor(3, 4)
	if cur.X != 3 || cur.Y != 4 {
		t.Errorf("expected (3,4), got (%d,%d)", cur.X, cur.Y)
	}
	if cur.Font != font.Font6x13 || cur.Color != pixel.White || cur.CharSpacing != 1 || cur.LineSpacing != 1 {
		t.Errorf("unexpected defaults %+v", cur)
	}
}

func TestPutChar(t *testing.T) {
	d, p := newPanel(t, nil)
	cur := gc9d01.NewCursor(10, 20)
	cur.Color = pixel.Red
	if err := d.PutChar(cur, 'A'); err != nil {
		t.Fatal(err)
	}
	if cur.X != 17 || cur.Y != 20 {
		t.Errorf("expected cursor at (17,20), got (%d,%d)", cur.X, cur.Y)
	}
	if x0, y0, x1, y1 := p.Window(); x0 != 10 || y0 != 20 || x1 != 15 || y1 != 32 {
		t.Errorf("expected window (10,20)-(15,32), got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	if len(p.Writes) != 6*13 {
		t.Fatalf("expected %d pixel writes, got %d", 6*13, len(p.Writes))
	}

	glyph, _ := font.Font6x13.Glyph('A')
	for i, on := range font.Unpack(glyph, 6) {
		want := pixel.Black
		if on {
			want = pixel.Red
		}
		if w := p.Writes[i]; w.C != want || w.X != 10+i%6 || w.Y != 20+i/6 {
			t.Errorf("write %d: expected %#04x at (%d,%d), got %+v", i, want.V, 10+i%6, 20+i/6, w)
		}
	}
}

func TestPutCharUnprintable(t *testing.T) {
	for _, c := range []byte{0, 31, 128, 0xFF} {
		d, p := newPanel(t, nil)
		cur := gc9d01.NewCursor(5, 6)
		if err := d.PutChar(cur, c); err != nil {
			t.Fatal(err)
		}
		if len(p.Commands) != 0 || len(p.Writes) != 0 {
			t.Errorf("code %d: expected no bus traffic, got %d commands", c, len(p.Commands))
		}
		if cur.X != 5 || cur.Y != 6 {
			t.Errorf("code %d: expected cursor unchanged, got (%d,%d)", c, cur.X, cur.Y)
		}
	}
}

func TestPrintWrap(t *testing.T) {
	d, p := newPanel(t, &gc9d01.Config{Width: 60, Height: 60})
	cur := gc9d01.NewCursor(0, 0)
	if err := d.Print(cur, "ABCDEFGHI"); err != nil {
		t.Fatal(err)
	}
	// Eight characters fit in 56 columns, the ninth needs 63.
	if cur.X != 7 || cur.Y != 14 {
		t.Errorf("expected cursor at (7,14), got (%d,%d)", cur.X, cur.Y)
	}
	if n := countRAMWR(p); n != 9 {
		t.Errorf("expected 9 glyphs, got %d", n)
	}
	last := p.Writes[len(p.Writes)-1]
	if last.X != 5 || last.Y != 14+12 {
		t.Errorf("expected the last glyph at the start of line 2, last pixel at (%d,%d)", last.X, last.Y)
	}
}

func TestPrintNewline(t *testing.T) {
	d, p := newPanel(t, &gc9d01.Config{Width: 60, Height: 30})
	cur := gc9d01.NewCursor(20, 0)
	for _, want := range []struct{ x, y int }{{0, 14}, {0, 0}, {0, 14}} {
		if err := d.PutChar(cur, '\n'); err != nil {
			t.Fatal(err)
		}
		if cur.X != want.x || cur.Y != want.y {
			t.Errorf("expected cursor at (%d,%d), got (%d,%d)", want.x, want.y, cur.X, cur.Y)
		}
	}
	if len(p.Commands) != 0 {
		t.Errorf("expected newlines to draw nothing, got %d commands", len(p.Commands))
	}
}

func TestPrintWrapToTop(t *testing.T) {
	d, _ := newPanel(t, &gc9d01.Config{Width: 14, Height: 30})
	cur := gc9d01.NewCursor(0, 14)
	// Two characters fit on a line, the third one wraps to the top.
	if err := d.Print(cur, "abc"); err != nil {
		t.Fatal(err)
	}
	if cur.X != 7 || cur.Y != 0 {
		t.Errorf("expected cursor at (7,0), got (%d,%d)", cur.X, cur.Y)
	}
}

func TestPrintUnprintableWraps(t *testing.T) {
	d, p := newPanel(t, &gc9d01.Config{Width: 60, Height: 60})
	cur := gc9d01.NewCursor(56, 0)
	if err := d.PutChar(cur, 0x7F+1); err != nil {
		t.Fatal(err)
	}
	// The wrap check runs before the glyph lookup.
	if cur.X != 0 || cur.Y != 14 {
		t.Errorf("expected cursor at (0,14), got (%d,%d)", cur.X, cur.Y)
	}
	if len(p.Commands) != 0 {
		t.Errorf("expected no bus traffic, got %d commands", len(p.Commands))
	}
}

func TestPrintfTruncate(t *testing.T) {
	d, p := newPanel(t, nil)
	cur := gc9d01.NewCursor(0, 0)
	if err := d.Printf(cur, "%s|%s", strings.Repeat("x", 100), strings.Repeat("y", 100)); err != nil {
		t.Fatal(err)
	}
	if n := countRAMWR(p); n != gc9d01.MaxTextLength {
		t.Errorf("expected %d glyphs, got %d", gc9d01.MaxTextLength, n)
	}
}

func TestPrintfLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  language.Tag
		want string
	}{
		{"plain", language.Und, "1500 ok"},
		{"english", language.English, "1,500 ok"},
		{"german", language.German, "1.500 ok"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, got := newPanel(t, &gc9d01.Config{Language: test.tag})
			if err := d.Printf(gc9d01.NewCursor(0, 0), "%v %s", 1500, "ok"); err != nil {
				t.Fatal(err)
			}
			d, want := newPanel(t, nil)
			if err := d.Print(gc9d01.NewCursor(0, 0), test.want); err != nil {
				t.Fatal(err)
			}
			if len(got.Writes) != len(want.Writes) {
				t.Fatalf("expected %d writes, got %d", len(want.Writes), len(got.Writes))
			}
			for i := range want.Writes {
				if got.Writes[i] != want.Writes[i] {
					t.Fatalf("write %d: expected %+v, got %+v", i, want.Writes[i], got.Writes[i])
				}
			}
		})
	}
}

func TestNilFont(t *testing.T) {
	d, p := newPanel(t, nil)
	cur := &gc9d01.Cursor{Color: pixel.Green}
	if err := d.Print(cur, "ab"); err != nil {
		t.Fatal(err)
	}
	if cur.X != 12 {
		t.Errorf("expected cursor at 12, got %d", cur.X)
	}
	if len(p.Writes) != 2*6*13 {
		t.Errorf("expected %d writes, got %d", 2*6*13, len(p.Writes))
	}
}

func TestDrawCJK(t *testing.T) {
	d, p := newPanel(t, &gc9d01.Config{ColumnOffset: 1, RowOffset: 2})
	if err := d.DrawCJK(20, 30, pixel.Yellow, testCJK, 0); err != nil {
		t.Fatal(err)
	}
	if x0, y0, x1, y1 := p.Window(); x0 != 20 || y0 != 30 || x1 != 35 || y1 != 45 {
		t.Errorf("expected window (20,30)-(35,45), got (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	if len(p.Writes) != 256 {
		t.Fatalf("expected 256 writes, got %d", len(p.Writes))
	}

	// Reference unpack: byte i, bit b is pixel i*8+b of the 16 pixel wide cell.
	g := testCJK[0]
	for i := 0; i < 32; i++ {
		for b := 0; b < 8; b++ {
			n := i*8 + b
			want := pixel.Black
			if g[i]>>b&1 == 1 {
				want = pixel.Yellow
			}
			if got := p.At(20+n%16, 30+n/16); got != want {
				t.Errorf("pixel (%d,%d): expected %#04x, got %#04x", n%16, n/16, want.V, got.V)
			}
		}
	}
}

func TestDrawCJKIndex(t *testing.T) {
	d, p := newPanel(t, nil)
	for _, index := range []int{-1, len(testCJK)} {
		if err := d.DrawCJK(0, 0, pixel.Red, testCJK, index); err != nil {
			t.Fatal(err)
		}
	}
	if len(p.Commands) != 0 {
		t.Errorf("expected no bus traffic, got %d commands", len(p.Commands))
	}

	if err := d.DrawCJK(0, 0, pixel.Red, testCJK, 1); err != nil {
		t.Fatal(err)
	}
	// 0xAA lights the odd pixels of the first row.
	for x := 0; x < 16; x++ {
		want := x%2 == 1
		if got := p.At(x, 0) == pixel.Red; got != want {
			t.Errorf("pixel (%d,0): expected lit=%t", x, want)
		}
	}
}
