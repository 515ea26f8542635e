/*
Package sampler reduces rasterized glyph images to grids of intensity values.

Glyphs are rendered white-on-black, so a pixel's brightness is a direct proxy
for ink coverage. Color information is discarded: intensity is the unweighted
mean of the three channels, rescaled to 0…Ceiling.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sampler

import (
	"image"
)

// Ceiling is the upper bound of intensity values. Grids store one byte per
// pixel, matching the uint8_t element type of emitted tables.
const Ceiling = 255

// Grid is a rectangle of intensity values, one per pixel, in row-major order
// with the origin at the top-left.
type Grid struct {
	Width  int
	Height int
	Values []uint8 // len = Width * Height
}

// At returns the intensity at column x, row y.
func (g Grid) At(x, y int) uint8 {
	return g.Values[y*g.Width+x]
}

// Sample reduces an image to a width×height grid of intensities.
//
// width and height select the top-left region of the image to sample; the
// backing image may be larger (rasterizers may hand out padded buffers), but
// never smaller. A width or height of 0 yields an empty grid, which is the
// legitimate shape of blank glyphs.
//
// Sample is a pure function: it has no state and identical input always
// produces an identical grid.
func Sample(img image.Image, width, height int) Grid {
	grid := Grid{
		Width:  width,
		Height: height,
		Values: make([]uint8, width*height),
	}
	if width == 0 || height == 0 {
		return grid
	}
	min := img.Bounds().Min
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
			grid.Values[i] = intensity(clamp8(r), clamp8(g), clamp8(b))
			i++
		}
	}
	return grid
}

// intensity rescales the channel sum into 0…Ceiling, rounding to nearest.
// 765 = 3 * 255 is the maximum channel sum.
func intensity(r, g, b uint32) uint8 {
	sum := r + g + b
	return uint8((sum*Ceiling + 765/2) / 765)
}

// clamp8 converts a 16-bit color channel (as returned by image.Image) to
// 8 bits. Channels must not exceed 0xFF after conversion.
func clamp8(c uint32) uint32 {
	c >>= 8
	if c > 0xFF {
		return 0xFF
	}
	return c
}
