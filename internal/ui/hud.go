//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"seat-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 14
	lineHeight     = 18
	groupSpacing   = 8
)

// HUD renders the rule settings and run progress to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

type hudLine struct {
	text   string
	header bool
	gap    bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: h.sim.Name(), header: true})
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			h.lines = append(h.lines, hudLine{gap: true}, hudLine{text: group.Name, header: true})
			for _, p := range group.Params {
				h.lines = append(h.lines, hudLine{text: fmt.Sprintf("%-10s %s", p.Label, p.Value)})
			}
		}
	}
	h.lines = append(h.lines,
		hudLine{gap: true},
		hudLine{text: "space pause  n step"},
		hudLine{text: "r reset  s reseed  q quit"},
	)
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if line.gap {
			y += groupSpacing
			continue
		}
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			clr = color.RGBA{R: 160, G: 200, B: 240, A: 255}
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, clr)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
