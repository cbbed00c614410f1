//go:build ebiten

package app

import (
	"log"

	"mad-life/internal/input"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = []struct {
	native ebiten.MouseButton
	button input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// Game adapts the Engine to the ebiten.Game interface. ebiten paces the
// updates, so the engine runs without a limiter.
type Game struct {
	engine *Engine
	canvas *render.Canvas
	queue  *input.Queue
	image  *ebiten.Image
	hud    *ui.HUD

	keys   []ebiten.Key
	width  int
	height int
}

// NewGame constructs a Game for the provided configuration.
func NewGame(cfg *Config, logger *log.Logger) (*Game, error) {
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	queue := &input.Queue{}
	engine, err := NewEngine(cfg, canvas, queue, nil, logger)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine: engine,
		canvas: canvas,
		queue:  queue,
		image:  ebiten.NewImage(cfg.Width, cfg.Height),
		width:  cfg.Width,
		height: cfg.Height,
	}
	if cfg.ShowHUD {
		g.hud = ui.NewHUD()
	}
	return g, nil
}

// Update collects this frame's input and runs one engine tick.
func (g *Game) Update() error {
	g.collect()
	if g.hud != nil {
		g.hud.Update()
	}
	if err := g.engine.Tick(); err != nil {
		return err
	}
	g.image.WritePixels(g.canvas.Pixels())
	if !g.engine.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) collect() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(input.Quit())
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.queue.Push(input.KeyDown(keyName(k)))
	}
	x, y := ebiten.CursorPosition()
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.native) {
			g.queue.Push(input.MouseDown(mb.button, x, y))
		}
	}
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.image, nil)
	if g.hud != nil {
		g.hud.Draw(screen, g.engine.State())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
