//go:build sdl

// Package sdlwin provides the SDL2 window, renderer and event queue the
// engine draws into and polls.
package sdlwin

import (
	"image"
	"image/color"
	"strings"
	"time"

	"mad-life/internal/input"
	"mad-life/internal/render"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var mouseButtons = map[uint8]input.Button{
	sdl.BUTTON_LEFT:   input.ButtonLeft,
	sdl.BUTTON_MIDDLE: input.ButtonMiddle,
	sdl.BUTTON_RIGHT:  input.ButtonRight,
}

// Window owns the SDL subsystem, a window and its accelerated renderer.
type Window struct {
	win      *sdl.Window
	renderer *sdl.Renderer
}

// Open initialises SDL and acquires a centered width x height window with a
// vsynced renderer. Anything acquired before a failure is released again.
func Open(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, errors.Wrapf(render.ErrDisplaySurfaceCreationFailed, "sdl init: %v", err)
	}
	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(render.ErrDisplaySurfaceCreationFailed, "sdl: %v", err)
	}
	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, errors.Wrapf(render.ErrDrawingContextCreationFailed, "sdl: %v", err)
	}
	return &Window{win: win, renderer: renderer}, nil
}

// Close releases the renderer, the window and SDL itself, in that order.
func (w *Window) Close() error {
	var first error
	if w.renderer != nil {
		first = w.renderer.Destroy()
		w.renderer = nil
	}
	if w.win != nil {
		if err := w.win.Destroy(); err != nil && first == nil {
			first = err
		}
		w.win = nil
	}
	sdl.Quit()
	return errors.Wrap(first, "sdl teardown")
}

// Clear fills the render target with the draw color.
func (w *Window) Clear() error { return w.renderer.Clear() }

// SetDrawColor selects the color for Clear and FillRect.
func (w *Window) SetDrawColor(c color.RGBA) error {
	return w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// FillRect fills r with the draw color.
func (w *Window) FillRect(r image.Rectangle) error {
	return w.renderer.FillRect(&sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	})
}

// Present flips the frame to the screen.
func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

// Poll returns the next pending event the engine understands, skipping the
// rest. Key repeats from a held key are dropped, so a key yields one
// KeyDown per press as with the ebiten front end. Terminals cannot tell
// autorepeat apart from presses, so the term front end passes them through.
func (w *Window) Poll() (input.Event, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := translate(ev, keyName); ok {
			return e, true
		}
	}
	return input.Event{}, false
}

func translate(ev sdl.Event, name func(sdl.Keycode) input.Key) (input.Event, bool) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return input.Quit(), true
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return input.Event{}, false
		}
		return input.KeyDown(name(e.Keysym.Sym)), true
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return input.Event{}, false
		}
		button, ok := mouseButtons[e.Button]
		if !ok {
			return input.Event{}, false
		}
		return input.MouseDown(button, int(e.X), int(e.Y)), true
	}
	return input.Event{}, false
}

// Delay blocks for d using SDL's timer.
func Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	sdl.Delay(uint32(d / time.Millisecond))
}

func keyName(code sdl.Keycode) input.Key {
	return input.Key(strings.ToLower(sdl.GetKeyName(code)))
}
