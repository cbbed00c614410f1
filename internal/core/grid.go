package core

import "image"

// Grid stores the alive flags (0/1) of a fixed-size board in row-major order.
// Dimensions are fixed at construction; only cell values change afterwards.
type Grid struct {
	Rows, Cols int
	CellSize   int
	data       []uint8
}

// NewGrid allocates a dead grid with the given dimensions and cell pixel size.
func NewGrid(rows, cols, cellSize int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{Rows: rows, Cols: cols, CellSize: cellSize, data: make([]uint8, rows*cols)}
}

// NewGridForSurface sizes a grid to cover a width x height pixel surface.
func NewGridForSurface(width, height, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return NewGrid(height/cellSize, width/cellSize, cellSize)
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Alive reports the state of a cell. Out-of-range cells are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[g.Index(row, col)] != 0
}

// Set assigns a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// Toggle flips a cell and reports whether the coordinates were valid.
func (g *Grid) Toggle(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	idx := g.Index(row, col)
	g.data[idx] ^= 1
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Rect returns the screen rectangle covered by (row, col).
func (g *Grid) Rect(row, col int) image.Rectangle {
	x, y := col*g.CellSize, row*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// CellAt converts pixel coordinates to grid coordinates. ok is false when the
// pixel lies outside the area covered by the grid.
func (g *Grid) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.CellSize, x/g.CellSize
	if !g.InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// SameShape reports whether other has identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.Rows == other.Rows && g.Cols == other.Cols
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, CellSize: g.CellSize, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same shape and live cells.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameShape(other) {
		return false
	}
	for i, c := range g.data {
		if (c != 0) != (other.data[i] != 0) {
			return false
		}
	}
	return true
}
