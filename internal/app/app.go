//go:build ebiten

package app

import (
	"time"

	"seat-ca/internal/core"
	"seat-ca/internal/render"
	"seat-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	*controls
	painter *render.GridPainter
	hud     *ui.HUD
	scale   int
}

// New constructs a Game for the provided simulation. layoutSeed is the seed
// the R key resets to; zero restores the loaded layout.
func New(sim core.Sim, scale int, layoutSeed int64) *Game {
	size := sim.Size()
	return &Game{
		controls: newControls(sim, layoutSeed),
		painter:  render.NewGridPainter(size.W, size.H, render.SeatPalette),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
	}
}

var keyCommands = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeySpace, cmdTogglePause},
	{ebiten.KeyEnter, cmdResume},
	{ebiten.KeyN, cmdStepOnce},
	{ebiten.KeyR, cmdRestart},
	{ebiten.KeyS, cmdShuffle},
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			g.handle(kc.cmd, time.Now().UnixNano())
		}
	}
	g.advance()
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
