//go:build ebiten

package ui

import (
	"image/color"

	"rulescroll/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 4

// HUD renders a one-line status bar over the top-left corner of the view.
type HUD struct {
	sim     core.Sim
	line    string
	visible bool
	backing *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	h.backing = ebiten.NewImage(1, 1)
	h.backing.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	return h
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached status line from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.line = h.sim.Name()
		return
	}
	h.line = StatusLine(provider.Parameters(), paused)
}

// Draw paints the status line.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*hudPadding), float64(face.Height+2*hudPadding))
	screen.DrawImage(h.backing, op)
	text.Draw(screen, h.line, face, hudPadding, hudPadding+face.Ascent, color.White)
}
