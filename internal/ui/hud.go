//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the pixel height of the status strip below the grid.
const Height = 20

// HUD renders a one-line status strip for the simulation.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
	line  string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the status line from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.line = StatusLine(h.sim, paused)
}

// Draw paints the strip at vertical offset y with the given width.
func (h *HUD) Draw(screen *ebiten.Image, y, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, Height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(h.panel, h.line, basicfont.Face7x13, 6, 14, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
