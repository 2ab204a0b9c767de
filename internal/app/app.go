//go:build ebiten

package app

import (
	"log"
	"time"

	"rulescroll/internal/core"
	"rulescroll/internal/render"
	"rulescroll/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	colors  *render.HueCycle
	timer   *core.FixedStep

	cellSize int
	refused  core.Size
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		colors:   render.DefaultHueCycle(),
		timer:    core.NewFixedStep(cfg.Interval),
		cellSize: cfg.CellSize,
		seed:     cfg.Seed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sim)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.handleRuleKeys()

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.colors.Advance()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) handleRuleKeys() {
	delta := 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		delta = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		delta = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		delta = 10
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		delta = -10
	}
	if delta != 0 {
		AdjustIntParameter(g.sim, "rule", delta)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.colors.Background()
	screen.Fill(bg)
	g.painter.Blit(screen, g.sim.Cells(), g.colors.Foreground(), bg, g.cellSize)
	g.hud.Draw(screen)
}

// Layout keeps the logical screen at the window size and rebuilds the grid
// when the window holds a different number of cells.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth/g.cellSize, outsideHeight/g.cellSize)
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	rs, ok := g.sim.(core.Resizer)
	if !ok {
		return
	}
	if pw, ph := g.painter.Size(); pw == w && ph == h {
		return
	}
	if g.refused == (core.Size{W: w, H: h}) {
		return
	}
	if err := rs.Resize(w, h); err != nil {
		g.refused = core.Size{W: w, H: h}
		log.Printf("keeping %dx%d grid: %v", g.sim.Size().W, g.sim.Size().H, err)
		return
	}
	size := g.sim.Size()
	g.painter.Dispose()
	g.painter = render.NewGridPainter(size.W, size.H)
}
