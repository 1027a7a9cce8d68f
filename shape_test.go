package gc9d01_test

import (
	"image"
	"testing"

	"github.com/BeatGlow/gc9d01/pixel"
	"github.com/BeatGlow/gc9d01/sim"
)

func points(writes []sim.Write) []image.Point {
	out := make([]image.Point, len(writes))
	for i, w := range writes {
		out[i] = image.Pt(w.X, w.Y)
	}
	return out
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"point", 5, 5, 5, 5, []image.Point{{5, 5}}},
		{"horizontal", 0, 0, 4, 0, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"diagonal", 0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reverse", 2, 4, 2, 1, []image.Point{{2, 4}, {2, 3}, {2, 2}, {2, 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, p := newPanel(t, nil)
			if err := d.DrawLine(test.x0, test.y0, test.x1, test.y1, pixel.Green); err != nil {
				t.Fatal(err)
			}
			got := points(p.Writes)
			if len(got) != len(test.want) {
				t.Fatalf("expected %d pixels %v, got %d %v", len(test.want), test.want, len(got), got)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("pixel %d: expected %s, got %s", i, test.want[i], got[i])
				}
			}
			// Each pixel is its own window.
			if n := len(p.Commands); n != 3*len(test.want) {
				t.Errorf("expected %d commands, got %d", 3*len(test.want), n)
			}
		})
	}
}

func TestDrawCircleZero(t *testing.T) {
	d, p := newPanel(t, nil)
	if err := d.DrawCircle(40, 30, 0, pixel.Blue); err != nil {
		t.Fatal(err)
	}
	if len(p.Writes) != 8 {
		t.Fatalf("expected 8 writes, got %d", len(p.Writes))
	}
	for _, w := range p.Writes {
		if w.X != 40 || w.Y != 30 {
			t.Errorf("expected (40,30), got (%d,%d)", w.X, w.Y)
		}
	}
	if n := p.Lit(); n != 1 {
		t.Errorf("expected 1 lit pixel, got %d", n)
	}
}

func TestDrawRect(t *testing.T) {
	d, p := newPanel(t, nil)
	if err := d.DrawRect(0, 0, 10, 5, pixel.White); err != nil {
		t.Fatal(err)
	}
	bounds := image.Rect(0, 0, 10, 5)
	for _, w := range p.Writes {
		if !image.Pt(w.X, w.Y).In(bounds) {
			t.Errorf("pixel (%d,%d) outside %s", w.X, w.Y, bounds)
		}
	}
	for _, corner := range []image.Point{{0, 0}, {9, 0}, {9, 4}, {0, 4}} {
		if p.At(corner.X, corner.Y) != pixel.White {
			t.Errorf("expected corner %s to be drawn", corner)
		}
	}
	// Perimeter of a 10x5 outline.
	if n := p.Lit(); n != 2*10+2*3 {
		t.Errorf("expected 26 lit pixels, got %d", n)
	}
}

func TestDrawTriangle(t *testing.T) {
	d, p := newPanel(t, nil)
	if err := d.DrawTriangle(0, 0, 4, 0, 0, 4, pixel.Red); err != nil {
		t.Fatal(err)
	}
	// Three lines of 5 pixels.
	if len(p.Writes) != 15 {
		t.Errorf("expected 15 writes, got %d", len(p.Writes))
	}
	if n := p.Lit(); n != 12 {
		t.Errorf("expected 12 lit pixels, got %d", n)
	}
	if p.At(1, 1) != pixel.Black {
		t.Error("expected the triangle not to be filled")
	}
}

func TestDrawPixel(t *testing.T) {
	d, p := newPanel(t, nil)
	if err := d.DrawPixel(159, 159, pixel.Yellow); err != nil {
		t.Fatal(err)
	}
	if p.At(159, 159) != pixel.Yellow {
		t.Error("expected the bottom right pixel to be yellow")
	}
}
