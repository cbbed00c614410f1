package life

import "mad-life/internal/core"

// Advance writes the generation following src into dst and returns the
// population of src. Every transition reads only src, so dst must be a
// distinct buffer of the same shape.
func Advance(dst, src *core.Grid) int {
	if dst == src || !dst.SameShape(src) {
		panic("life: Advance needs a distinct destination grid of the same shape")
	}
	rows, cols := src.Rows, src.Cols
	cur, nxt := src.Cells(), dst.Cells()
	population := 0
	for row := 0; row < rows; row++ {
		minRow, maxRow := max(0, row-1), min(rows-1, row+1)
		for col := 0; col < cols; col++ {
			minCol, maxCol := max(0, col-1), min(cols-1, col+1)
			idx := row*cols + col
			alive := cur[idx] != 0

			neighbors := 0
			for ny := minRow; ny <= maxRow; ny++ {
				for nx := minCol; nx <= maxCol; nx++ {
					if cur[ny*cols+nx] != 0 {
						neighbors++
					}
				}
			}
			if alive {
				neighbors--
				population++
			}

			nxt[idx] = 0
			if neighbors == 3 || (alive && neighbors == 2) {
				nxt[idx] = 1
			}
		}
	}
	return population
}

// Next returns the following generation as a new grid together with the
// population of src. src is left untouched.
func Next(src *core.Grid) (*core.Grid, int) {
	dst := core.NewGrid(src.Rows, src.Cols, src.CellSize)
	return dst, Advance(dst, src)
}
