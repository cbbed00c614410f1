package app

import (
	"io"
	"log"

	"mad-life/internal/core"
	"mad-life/internal/input"
	"mad-life/internal/render"
	"mad-life/internal/sims/life"

	"github.com/pkg/errors"
)

// Limiter paces the loop. Front ends that pace frames themselves pass nil.
type Limiter interface {
	Wait()
}

// State is the run state owned by the Engine.
type State struct {
	Running       bool
	Simulating    bool
	SeedRequested bool

	// Population is the live count of the generation replaced during the
	// current tick; zero on ticks that did not step.
	Population int
	Generation int
	// Live is the live count after the tick.
	Live int
}

// Summary reports what the status HUD displays.
func (s State) Summary() (generation, live int, simulating bool) {
	return s.Generation, s.Live, s.Simulating
}

// Engine drives one tick at a time: render, drain input, reseed, step, wait.
type Engine struct {
	sim     *life.Life
	display render.Display
	source  input.Source
	keys    input.Keymap
	palette render.Palette
	limiter Limiter
	logger  *log.Logger

	quitToggles bool
	state       State
	stepOnce    bool
	intents     []input.Intent
}

// NewEngine wires a Life simulation built from cfg to its collaborators.
func NewEngine(cfg *Config, display render.Display, source input.Source, limiter Limiter, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rng := core.NewClockRNG(cfg.Seed)
	logger.Printf("seed %d", rng.Seed())
	return &Engine{
		sim:         life.NewForSurface(cfg.Width, cfg.Height, cfg.CellSize, rng, cfg.SeedRadius),
		display:     display,
		source:      source,
		keys:        cfg.Keymap(),
		palette:     palette,
		limiter:     limiter,
		logger:      logger,
		quitToggles: cfg.QuitToggles,
		state:       State{Running: true},
	}, nil
}

// Sim exposes the simulation for seeding patterns before the loop starts.
func (e *Engine) Sim() *life.Life { return e.sim }

// State returns a copy of the current run state.
func (e *Engine) State() State { return e.state }

// Running reports whether the loop should keep going.
func (e *Engine) Running() bool { return e.state.Running }

// Tick runs one frame.
func (e *Engine) Tick() error {
	e.state.Population = 0

	if err := render.DrawGrid(e.display, e.sim.Grid(), e.palette); err != nil {
		return errors.Wrap(err, "render frame")
	}

	e.intents = input.Drain(e.source, e.keys, e.intents[:0])
	for _, intent := range e.intents {
		e.apply(intent)
	}

	if e.state.SeedRequested {
		row, col := e.sim.Reseed()
		e.state.SeedRequested = false
		e.logger.Printf("reseeded around row %d col %d: %d cells", row, col, e.sim.Grid().Population())
	}

	if e.state.Simulating || e.stepOnce {
		e.state.Population = e.sim.Step()
		e.stepOnce = false
	}
	e.state.Generation = e.sim.Generation()
	e.state.Live = e.sim.Grid().Population()

	if e.limiter != nil {
		e.limiter.Wait()
	}
	return nil
}

// Run ticks until a quit request stops the loop.
func (e *Engine) Run() error {
	for e.state.Running {
		if err := e.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) apply(intent input.Intent) {
	switch intent.Action {
	case input.ActionQuit:
		if e.quitToggles {
			e.state.Running = !e.state.Running
		} else {
			e.state.Running = false
		}
	case input.ActionReseed:
		e.state.SeedRequested = true
	case input.ActionToggleRun:
		e.state.Simulating = !e.state.Simulating
		e.logger.Printf("simulating=%v at generation %d", e.state.Simulating, e.sim.Generation())
	case input.ActionPointer:
		if intent.Button != input.ButtonLeft {
			return
		}
		if row, col, ok := e.sim.Grid().CellAt(intent.X, intent.Y); ok {
			e.sim.Toggle(row, col)
		}
	case input.ActionStepOnce:
		if !e.state.Simulating {
			e.stepOnce = true
		}
	case input.ActionClear:
		e.sim.Clear()
	}
}
