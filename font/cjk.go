package font

// CJK cell dimensions.
const (
	CJKWidth  = 16
	CJKHeight = 16
)

// CJK is a 16x16 double-byte glyph. Byte i holds stream pixels i*8 to i*8+7,
// least significant bit first, so byte 2*row covers the left half of a row
// and byte 2*row+1 the right half.
type CJK [32]byte

// WalkCJK calls fn for all 256 pixels of g in the order they are streamed to
// the panel. WalkCJK stops at the first error returned by fn.
func WalkCJK(g *CJK, fn func(on bool) error) error {
	for _, b := range g {
		for bit := 0; bit < 8; bit++ {
			if err := fn(b&0x01 != 0); err != nil {
				return err
			}
			b >>= 1
		}
	}
	return nil
}

// UnpackCJK expands g into 256 pixel decisions in stream order.
func UnpackCJK(g *CJK) []bool {
	out := make([]bool, 0, CJKWidth*CJKHeight)
	_ = WalkCJK(g, func(on bool) error {
		out = append(out, on)
		return nil
	})
	return out
}
