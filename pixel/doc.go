// Package pixel implements the RGB565 color and image types used by GC9D01 panels.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, so regular image code can prepare pixel data that is
// streamed to the panel unchanged.
package pixel
