package life

import (
	"mad-life/internal/core"
)

// Life runs Conway's Game of Life on a bounded grid, double-buffered so each
// generation is computed from an untouched snapshot of the previous one.
type Life struct {
	cur, nxt *core.Grid
	rng      *core.RNG
	radius   int

	generation int
}

// New returns a dead Life board. rng drives Reseed; radius is the half-width
// of the reseeded square.
func New(rows, cols, cellSize int, rng *core.RNG, radius int) *Life {
	if rng == nil {
		rng = core.NewClockRNG(0)
	}
	cur := core.NewGrid(rows, cols, cellSize)
	return &Life{
		cur:    cur,
		nxt:    core.NewGrid(cur.Rows, cur.Cols, cur.CellSize),
		rng:    rng,
		radius: radius,
	}
}

// NewForSurface sizes the board to a width x height pixel surface.
func NewForSurface(width, height, cellSize int, rng *core.RNG, radius int) *Life {
	g := core.NewGridForSurface(width, height, cellSize)
	return New(g.Rows, g.Cols, g.CellSize, rng, radius)
}

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation counts the steps taken since the last clear or reseed.
func (l *Life) Generation() int { return l.generation }

// Toggle flips a single cell. Out-of-range coordinates are ignored.
func (l *Life) Toggle(row, col int) bool { return l.cur.Toggle(row, col) }

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Reseed clears the board and randomizes a square region around a random
// center, which it returns.
func (l *Life) Reseed() (row, col int) {
	l.Clear()
	return RandomizeRegion(l.cur, l.rng, l.radius)
}

// Step advances the simulation by one generation and returns the population
// of the generation it replaced.
func (l *Life) Step() int {
	population := Advance(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return population
}
