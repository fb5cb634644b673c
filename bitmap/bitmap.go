/*
Package bitmap implements a decoder for 1-bit monochrome BMP images.

The decoded image is a Grid of filled/empty cells with the origin at the top
left. A pixel is filled when the red component of the palette entry it selects
is zero, which is black in any sensibly authored monochrome bitmap. Every other
palette color, not just pure white, is treated as empty.

Only uncompressed bottom-up bitmaps with exactly one bit per pixel are
supported.
*/
package bitmap

import (
	"image"
	"image/color"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	paletteLen    = 2
	paletteEntry  = 4

	magic = "BM"
)

// Palette is the color model of a Grid. Index 0 is empty, index 1 is filled.
var Palette = color.Palette{color.White, color.Black}

// Grid is an immutable width by height array of filled/empty cells stored in
// row-major order.
type Grid struct {
	width, height int
	pix           []bool
}

// NewGrid returns an empty Grid with the given dimensions. If either
// dimension is negative the Grid is 0 by 0.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Filled reports whether the cell at (x, y) is filled. Cells outside the grid
// are empty.
func (g *Grid) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.pix[y*g.width+x]
}

// Set marks the cell at (x, y) as filled or empty. It is a no-op outside the
// grid.
func (g *Grid) Set(x, y int, filled bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.pix[y*g.width+x] = filled
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model { return Palette }

// At implements image.Image.
func (g *Grid) At(x, y int) color.Color { return Palette[g.ColorIndexAt(x, y)] }

// ColorIndexAt implements image.PalettedImage.
func (g *Grid) ColorIndexAt(x, y int) uint8 {
	if g.Filled(x, y) {
		return 1
	}
	return 0
}
