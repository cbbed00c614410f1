package render

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"testing"

	"mad-life/internal/core"

	"github.com/pkg/errors"
)

type recorder struct {
	calls   []string
	failOn  string
	current color.RGBA
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if call == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func (r *recorder) Clear() error { return r.record("clear") }

func (r *recorder) SetDrawColor(c color.RGBA) error {
	r.current = c
	return r.record(fmt.Sprintf("color %d", c.R))
}

func (r *recorder) FillRect(rect image.Rectangle) error {
	return r.record(fmt.Sprintf("fill %v", rect))
}

func (r *recorder) Present() error { return r.record("present") }

func TestDrawGridCallSequence(t *testing.T) {
	g := core.NewGrid(3, 3, 5)
	g.Set(0, 1, true)
	g.Set(2, 2, true)

	rec := &recorder{}
	if err := DrawGrid(rec, g, DefaultPalette()); err != nil {
		t.Fatalf("DrawGrid: %v", err)
	}
	want := []string{
		"color 0",
		"clear",
		"color 255",
		"fill (5,0)-(10,5)",
		"color 255",
		"fill (10,10)-(15,15)",
		"present",
	}
	if !slices.Equal(rec.calls, want) {
		t.Fatalf("calls = %q, want %q", rec.calls, want)
	}
}

func TestDrawGridStopsOnError(t *testing.T) {
	g := core.NewGrid(2, 2, 1)
	g.Set(0, 0, true)
	rec := &recorder{failOn: "fill (0,0)-(1,1)"}
	err := DrawGrid(rec, g, DefaultPalette())
	if err == nil {
		t.Fatal("expected fill error")
	}
	if slices.Contains(rec.calls, "present") {
		t.Fatal("a failed frame must not be presented")
	}
}

func TestCanvasPresentsFrame(t *testing.T) {
	g := core.NewGrid(2, 3, 2)
	g.Set(1, 2, true)
	c := NewCanvas(6, 4)
	pal := Palette{Live: color.RGBA{R: 200, A: 255}, Background: color.RGBA{B: 10, A: 255}}

	if err := DrawGrid(c, g, pal); err != nil {
		t.Fatalf("DrawGrid: %v", err)
	}
	if got := c.At(5, 3); got != pal.Live {
		t.Fatalf("live pixel = %v, want %v", got, pal.Live)
	}
	if got := c.At(4, 2); got != pal.Live {
		t.Fatalf("live pixel = %v, want %v", got, pal.Live)
	}
	if got := c.At(3, 3); got != pal.Background {
		t.Fatalf("background pixel = %v, want %v", got, pal.Background)
	}

	// Drawing without Present leaves the visible frame alone.
	c.SetDrawColor(color.RGBA{G: 1, A: 255})
	c.Clear()
	if got := c.At(5, 3); got != pal.Live {
		t.Fatalf("unpresented clear leaked into front buffer: %v", got)
	}
}

func TestCanvasClipsRects(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetDrawColor(color.RGBA{R: 1, A: 255})
	if err := c.FillRect(image.Rect(2, 2, 10, 10)); err != nil {
		t.Fatal(err)
	}
	if err := c.FillRect(image.Rect(-5, -5, -1, -1)); err != nil {
		t.Fatal(err)
	}
	c.Present()
	if c.At(3, 3).R != 1 || c.At(1, 1).R != 0 {
		t.Fatal("clipped fill painted the wrong pixels")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil || c != (color.RGBA{R: 255, G: 128, A: 255}) {
		t.Fatalf("ParseColor = %v, %v", c, err)
	}
	c, err = ParseColor("10203040")
	if err != nil || c != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("ParseColor with alpha = %v, %v", c, err)
	}
	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestStartupFailures(t *testing.T) {
	err := errors.Wrap(ErrDrawingContextCreationFailed, "sdl")
	if !IsStartupFailure(err) {
		t.Fatal("wrapped startup error not recognised")
	}
	if IsStartupFailure(errors.New("other")) {
		t.Fatal("unrelated error recognised as startup failure")
	}
}
