// Package term draws the board in a terminal with tcell. Each cell takes two
// columns of one terminal row so the board keeps a square aspect.
package term

import (
	"image"
	"image/color"
	"unicode"

	"mad-life/internal/input"
	"mad-life/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Screen adapts a tcell.Screen to the engine's display and input contracts.
type Screen struct {
	s        tcell.Screen
	cellSize int

	style   tcell.Style
	buttons tcell.ButtonMask
}

// Open creates and initialises a terminal screen with mouse reporting.
// cellSize is the pixel edge the engine uses for one cell.
func Open(cellSize int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrapf(render.ErrDisplaySurfaceCreationFailed, "tcell: %v", err)
	}
	return open(s, cellSize)
}

func open(s tcell.Screen, cellSize int) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrapf(render.ErrDrawingContextCreationFailed, "tcell: %v", err)
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	s.EnableMouse()
	s.HideCursor()
	return &Screen{s: s, cellSize: cellSize, style: tcell.StyleDefault}, nil
}

// Close restores the terminal.
func (t *Screen) Close() error {
	t.s.Fini()
	return nil
}

// SurfaceSize returns the pixel surface the terminal can show.
func (t *Screen) SurfaceSize() (width, height int) {
	cols, rows := t.s.Size()
	return (cols / 2) * t.cellSize, rows * t.cellSize
}

// Clear fills the terminal with the draw color.
func (t *Screen) Clear() error {
	t.s.Fill(' ', t.style)
	return nil
}

// SetDrawColor selects the background used by Clear and FillRect.
func (t *Screen) SetDrawColor(c color.RGBA) error {
	t.style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	return nil
}

// FillRect paints every cell whose origin lies inside r.
func (t *Screen) FillRect(r image.Rectangle) error {
	cs := t.cellSize
	for row := ceilDiv(r.Min.Y, cs); row*cs < r.Max.Y; row++ {
		for col := ceilDiv(r.Min.X, cs); col*cs < r.Max.X; col++ {
			t.s.SetContent(2*col, row, ' ', nil, t.style)
			t.s.SetContent(2*col+1, row, ' ', nil, t.style)
		}
	}
	return nil
}

// Present shows the frame.
func (t *Screen) Present() error {
	t.s.Show()
	return nil
}

// Poll drains tcell's queue without blocking and returns the next event the
// engine understands.
func (t *Screen) Poll() (input.Event, bool) {
	for t.s.HasPendingEvent() {
		if ev, ok := t.translate(t.s.PollEvent()); ok {
			return ev, true
		}
	}
	return input.Event{}, false
}

func (t *Screen) translate(ev tcell.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyCtrlC:
			return input.Quit(), true
		case tcell.KeyRune:
			if e.Rune() == ' ' {
				return input.KeyDown("space"), true
			}
			return input.KeyDown(input.Key(string(unicode.ToLower(e.Rune())))), true
		case tcell.KeyEscape:
			return input.KeyDown("escape"), true
		case tcell.KeyEnter:
			return input.KeyDown("return"), true
		}
	case *tcell.EventMouse:
		pressed := e.Buttons() &^ t.buttons
		t.buttons = e.Buttons()
		x, y := e.Position()
		px, py := (x/2)*t.cellSize, y*t.cellSize
		switch {
		case pressed&tcell.Button1 != 0:
			return input.MouseDown(input.ButtonLeft, px, py), true
		case pressed&tcell.Button3 != 0:
			return input.MouseDown(input.ButtonMiddle, px, py), true
		case pressed&tcell.Button2 != 0:
			return input.MouseDown(input.ButtonRight, px, py), true
		}
	case *tcell.EventResize:
		t.s.Sync()
	}
	return input.Event{}, false
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
