/*
Package pack decomposes the filled cells of a bitmap into a list of
non-overlapping filled rectangles.

The decomposition is greedy. Cells are scanned in row-major order and the
first unclaimed filled cell found starts a new rectangle which is grown as far
right as possible along its row and then as far down as every row allows.
The result always covers exactly the filled cells but is not guaranteed to
use the fewest rectangles.
*/
package pack

import "image"

// Bitmap is the read-only view of a grid that Optimize needs.
type Bitmap interface {
	Width() int
	Height() int
	Filled(x, y int) bool
}

// Rectangle is a block of cells with its top-left corner at (X, Y).
type Rectangle struct {
	X, Y          int
	Width, Height int
	Filled        bool
}

// Right returns the column of the rightmost cell.
func (r Rectangle) Right() int { return r.X + r.Width - 1 }

// Bottom returns the row of the bottom cell.
func (r Rectangle) Bottom() int { return r.Y + r.Height - 1 }

// Area returns the number of cells covered.
func (r Rectangle) Area() int { return r.Width * r.Height }

// Bounds returns the rectangle as an image.Rectangle.
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Area returns the total number of cells covered by rects.
func Area(rects []Rectangle) int {
	n := 0
	for _, r := range rects {
		n += r.Area()
	}
	return n
}

type packer struct {
	m             Bitmap
	width, height int
	visited       []bool
}

func (p *packer) free(x, y int) bool {
	return !p.visited[y*p.width+x] && p.m.Filled(x, y)
}

func (p *packer) markVisited(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		offset := (y+dy)*p.width + x
		for dx := 0; dx < w; dx++ {
			p.visited[offset+dx] = true
		}
	}
}

func (p *packer) grow(x, y int) Rectangle {
	w := 0
	for x+w < p.width && p.free(x+w, y) {
		w++
	}

	h := 1
rows:
	for y+h < p.height {
		for dx := 0; dx < w; dx++ {
			if !p.free(x+dx, y+h) {
				break rows
			}
		}
		h++
	}

	p.markVisited(x, y, w, h)

	return Rectangle{X: x, Y: y, Width: w, Height: h, Filled: true}
}

// Optimize returns rectangles covering exactly the filled cells of m, in the
// order they were discovered. The result is deterministic for a given m.
func Optimize(m Bitmap) []Rectangle {
	p := packer{
		m:      m,
		width:  m.Width(),
		height: m.Height(),
	}
	if p.width <= 0 || p.height <= 0 {
		return nil
	}
	p.visited = make([]bool, p.width*p.height)

	var rects []Rectangle
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.free(x, y) {
				rects = append(rects, p.grow(x, y))
			}
		}
	}
	return rects
}
