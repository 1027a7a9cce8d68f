package draw

import (
	"image"

	"github.com/BeatGlow/gc9d01/pixel"
)

// Pixel draws a single pixel.
func Pixel(dst Target, p image.Point, c pixel.CRGB16) error {
	return dst.SetPixel(p.X, p.Y, c)
}

// Line draws a line between two points, both included, using Bresenham's
// algorithm. A line from a point to itself draws exactly one pixel.
func Line(dst Target, a, b image.Point, c pixel.CRGB16) error {
	var (
		x0, y0 = a.X, a.Y
		dx     = abs(b.X - a.X)
		dy     = abs(b.Y - a.Y)
		sx, sy = 1, 1
		e      = -dy / 2
	)
	if x0 >= b.X {
		sx = -1
	}
	if y0 >= b.Y {
		sy = -1
	}
	if dx > dy {
		e = dx / 2
	}

	for {
		if err := dst.SetPixel(x0, y0, c); err != nil {
			return err
		}
		if x0 == b.X && y0 == b.Y {
			return nil
		}
		// Both axes may step in the same iteration.
		e2 := e
		if e2 > -dx {
			e -= dy
			x0 += sx
		}
		if e2 < dy {
			e += dx
			y0 += sy
		}
	}
}

// Circle draws the outline of a circle with the midpoint algorithm. Each step
// plots all eight octant reflections, points on octant boundaries are plotted
// more than once.
func Circle(dst Target, center image.Point, radius int, c pixel.CRGB16) error {
	var (
		x0, y0 = center.X, center.Y
		x, y   = radius, 0
		e      = 0
	)
	for x >= y {
		for _, p := range [8]image.Point{
			{x0 + x, y0 + y},
			{x0 + y, y0 + x},
			{x0 - y, y0 + x},
			{x0 - x, y0 + y},
			{x0 - x, y0 - y},
			{x0 - y, y0 - x},
			{x0 + y, y0 - x},
			{x0 + x, y0 - y},
		} {
			if err := dst.SetPixel(p.X, p.Y, c); err != nil {
				return err
			}
		}

		if e <= 0 {
			y++
			e += 2*y + 1
		}
		if e > 0 {
			x--
			e -= 2*x + 1
		}
	}
	return nil
}

// Triangle draws the outline of a triangle as the lines p0-p1, p1-p2 and p2-p0.
func Triangle(dst Target, p0, p1, p2 image.Point, c pixel.CRGB16) error {
	for _, edge := range [3][2]image.Point{
		{p0, p1},
		{p1, p2},
		{p2, p0},
	} {
		if err := Line(dst, edge[0], edge[1], c); err != nil {
			return err
		}
	}
	return nil
}

// Rectangle draws the outline of rect. The Max point is exclusive, like in the
// image package. An empty rectangle has no defined outline.
func Rectangle(dst Target, rect image.Rectangle, c pixel.CRGB16) error {
	var (
		x0, y0 = rect.Min.X, rect.Min.Y
		x1, y1 = rect.Max.X - 1, rect.Max.Y - 1
	)
	for _, edge := range [4][2]image.Point{
		{{x0, y0}, {x1, y0}}, // top
		{{x1, y0}, {x1, y1}}, // right
		{{x1, y1}, {x0, y1}}, // bottom
		{{x0, y1}, {x0, y0}}, // left
	} {
		if err := Line(dst, edge[0], edge[1], c); err != nil {
			return err
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
