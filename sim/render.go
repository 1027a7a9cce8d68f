package sim

import (
	"bufio"
	"io"

	"github.com/muesli/termenv"
)

// upperHalf draws the top pixel in the foreground and the bottom pixel in the
// background color, so one terminal cell shows two panel lines.
const upperHalf = "▀"

// Render prints the panel image to w using the colors of profile. With the
// Ascii profile only the cell grid is printed.
func (p *Panel) Render(w io.Writer, profile termenv.Profile) error {
	var (
		out = bufio.NewWriter(w)
		r   = p.Image.Rect
	)
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			cell := upperHalf
			if profile != termenv.Ascii {
				cell = profile.String(upperHalf).
					Foreground(profile.FromColor(p.At(x, y))).
					Background(profile.FromColor(p.At(x, y+1))).
					String()
			}
			if _, err := out.WriteString(cell); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return out.Flush()
}
