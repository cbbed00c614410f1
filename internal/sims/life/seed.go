package life

import "mad-life/internal/core"

// RandomizeRegion picks a center anywhere on the grid and seeds the square of
// half-width radius around it. It returns the chosen center.
func RandomizeRegion(g *core.Grid, rng *core.RNG, radius int) (row, col int) {
	row = rng.IntN(g.Rows)
	col = rng.IntN(g.Cols)
	RandomizeRegionAt(g, rng, row, col, radius)
	return row, col
}

// RandomizeRegionAt brings each cell within Chebyshev distance radius of
// (row, col) to life with probability 1/2. The window is clipped to the grid
// and existing live cells are left alone.
func RandomizeRegionAt(g *core.Grid, rng *core.RNG, row, col, radius int) {
	if radius < 0 {
		return
	}
	top, bottom := max(0, row-radius), min(g.Rows-1, row+radius)
	left, right := max(0, col-radius), min(g.Cols-1, col+radius)
	cells := g.Cells()
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if rng.Bool() {
				cells[g.Index(y, x)] = 1
			}
		}
	}
}
