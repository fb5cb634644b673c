package bitmap

// CountFilled returns the number of filled cells in the grid.
func (g *Grid) CountFilled() int {
	n := 0
	for _, p := range g.pix {
		if p {
			n++
		}
	}
	return n
}
