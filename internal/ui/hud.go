//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelWidth   = 224
	panelHeight  = 52
	panelPadding = 6
	lineHeight   = 14
)

// Status is the subset of the run state shown on the HUD.
type Status interface {
	Summary() (generation, live int, simulating bool)
}

// HUD renders a small status panel in the top-left corner. H toggles it.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true, panel: ebiten.NewImage(panelWidth, panelHeight)}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel for the provided status.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.visible {
		return
	}
	generation, live, simulating := s.Summary()
	mode := "paused"
	if simulating {
		mode = "running"
	}

	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	y := panelPadding + 10
	text.Draw(h.panel, fmt.Sprintf("gen %d  %s", generation, mode), face, panelPadding, y, fg)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("live %d", live), face, panelPadding, y, fg)
	y += lineHeight
	text.Draw(h.panel, "s run  r seed  n step  c clear", face, panelPadding, y, dim)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.panel, op)
}
