package app

import (
	"image/color"
	"testing"

	"mad-life/internal/input"
	"mad-life/internal/render"

	"github.com/pkg/errors"
)

type countingLimiter struct{ waits int }

func (l *countingLimiter) Wait() { l.waits++ }

type failingDisplay struct{ render.Canvas }

func (failingDisplay) Present() error { return errors.New("lost device") }

func newTestEngine(t *testing.T, mutate func(*Config)) (*Engine, *input.Queue, *render.Canvas, *countingLimiter) {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 50, 40, 5
	cfg.SeedRadius = 2
	cfg.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	q := &input.Queue{}
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	lim := &countingLimiter{}
	e, err := NewEngine(cfg, canvas, q, lim, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, q, canvas, lim
}

func TestInitialState(t *testing.T) {
	e, _, _, _ := newTestEngine(t, nil)
	s := e.State()
	if !s.Running || s.Simulating || s.SeedRequested {
		t.Fatalf("unexpected initial state %+v", s)
	}
	g := e.Sim().Grid()
	if g.Rows != 8 || g.Cols != 10 {
		t.Fatalf("grid %dx%d, want 8x10", g.Rows, g.Cols)
	}
}

func TestClickTogglesCellWhilePaused(t *testing.T) {
	e, q, _, lim := newTestEngine(t, nil)
	q.Push(input.MouseDown(input.ButtonLeft, 12, 7))
	if err := e.Tick(); err != nil {
		t.Fatal(err)
	}
	if !e.Sim().Grid().Alive(1, 2) {
		t.Fatal("left click should toggle cell (1,2)")
	}
	if lim.waits != 1 {
		t.Fatalf("limiter waited %d times, want 1", lim.waits)
	}

	q.Push(input.MouseDown(input.ButtonRight, 12, 7))
	e.Tick()
	if !e.Sim().Grid().Alive(1, 2) {
		t.Fatal("right click must be ignored")
	}

	q.Push(input.MouseDown(input.ButtonLeft, 12, 7), input.MouseDown(input.ButtonLeft, 50, 40), input.MouseDown(input.ButtonLeft, -1, 3))
	e.Tick()
	if e.Sim().Grid().Population() != 0 {
		t.Fatalf("second click should kill the cell and out-of-range clicks do nothing, population %d", e.Sim().Grid().Population())
	}
}

func TestToggleRunSteps(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	g := e.Sim().Grid()
	g.Set(3, 4, true)
	g.Set(3, 5, true)
	g.Set(3, 6, true)

	q.Push(input.KeyDown("s"))
	if err := e.Tick(); err != nil {
		t.Fatal(err)
	}
	s := e.State()
	if !s.Simulating || s.Population != 3 || s.Generation != 1 || s.Live != 3 {
		t.Fatalf("unexpected state after first step %+v", s)
	}
	if !e.Sim().Grid().Alive(2, 5) || !e.Sim().Grid().Alive(4, 5) {
		t.Fatal("blinker should be vertical after one step")
	}

	q.Push(input.KeyDown("s"))
	e.Tick()
	s = e.State()
	if s.Simulating || s.Population != 0 || s.Generation != 1 {
		t.Fatalf("paused tick must not step, state %+v", s)
	}
}

func TestSummaryReportsLiveCells(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	q.Push(input.MouseDown(input.ButtonLeft, 12, 7), input.MouseDown(input.ButtonLeft, 17, 7))
	e.Tick()

	s := e.State()
	if s.Population != 0 {
		t.Fatalf("paused tick must leave the step population at 0, got %d", s.Population)
	}
	generation, live, simulating := s.Summary()
	if generation != 0 || live != 2 || simulating {
		t.Fatalf("Summary() = (%d, %d, %v), want (0, 2, false)", generation, live, simulating)
	}
}

func TestStepOnceWhilePaused(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	q.Push(input.KeyDown("n"))
	e.Tick()
	e.Tick()
	if got := e.State().Generation; got != 1 {
		t.Fatalf("single step should advance exactly once, generation %d", got)
	}
}

func TestReseedClearsAndSeeds(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	g := e.Sim().Grid()
	for col := 0; col < g.Cols; col++ {
		g.Set(0, col, true)
		g.Set(g.Rows-1, col, true)
	}
	q.Push(input.KeyDown("r"))
	e.Tick()

	if e.State().SeedRequested {
		t.Fatal("seed request must be consumed within the tick")
	}
	if g.Population() > 25 {
		t.Fatalf("reseed window is at most 5x5, got %d live cells", g.Population())
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	q.Push(input.Quit(), input.Quit())
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.Running() {
		t.Fatal("two quit requests must still stop the loop")
	}
}

func TestQuitToggles(t *testing.T) {
	e, q, _, _ := newTestEngine(t, func(c *Config) { c.QuitToggles = true })
	q.Push(input.Quit(), input.Quit())
	e.Tick()
	if !e.Running() {
		t.Fatal("second quit should resume running when toggling")
	}
	q.Push(input.KeyDown("escape"))
	e.Tick()
	if e.Running() {
		t.Fatal("odd number of quits should stop the loop")
	}
}

func TestClearIntent(t *testing.T) {
	e, q, _, _ := newTestEngine(t, nil)
	e.Sim().Grid().Set(1, 1, true)
	q.Push(input.KeyDown("c"))
	e.Tick()
	if e.Sim().Grid().Population() != 0 {
		t.Fatal("clear should empty the board")
	}
}

func TestRenderHappensBeforeInput(t *testing.T) {
	e, q, canvas, _ := newTestEngine(t, nil)
	q.Push(input.MouseDown(input.ButtonLeft, 0, 0))
	e.Tick()
	if got := canvas.At(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("frame rendered in a tick shows the grid before that tick's input, got %v", got)
	}
	e.Tick()
	if got := canvas.At(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("next frame should show the toggled cell, got %v", got)
	}
}

func TestRenderErrorStopsRun(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 20, 20
	d := &failingDisplay{Canvas: *render.NewCanvas(20, 20)}
	e, err := NewEngine(cfg, d, &input.Queue{}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err == nil {
		t.Fatal("expected render error")
	}
}
