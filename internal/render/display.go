package render

import (
	"image"
	"image/color"

	"mad-life/internal/core"

	"github.com/pkg/errors"
)

// Display is the drawing surface the loop renders into once per frame.
type Display interface {
	Clear() error
	SetDrawColor(c color.RGBA) error
	FillRect(r image.Rectangle) error
	Present() error
}

// Palette holds the two colors a frame is drawn with.
type Palette struct {
	Live       color.RGBA
	Background color.RGBA
}

// DefaultPalette draws white cells on black.
func DefaultPalette() Palette {
	return Palette{
		Live:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// DrawGrid clears d to the background, fills one rectangle per live cell and
// presents the frame.
func DrawGrid(d Display, g *core.Grid, p Palette) error {
	if err := d.SetDrawColor(p.Background); err != nil {
		return errors.Wrap(err, "set background color")
	}
	if err := d.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	cells := g.Cells()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if cells[g.Index(row, col)] == 0 {
				continue
			}
			if err := d.SetDrawColor(p.Live); err != nil {
				return errors.Wrap(err, "set cell color")
			}
			if err := d.FillRect(g.Rect(row, col)); err != nil {
				return errors.Wrapf(err, "fill cell (%d,%d)", row, col)
			}
		}
	}
	return errors.Wrap(d.Present(), "present")
}
