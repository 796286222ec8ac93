//go:build ebiten

package app

import (
	"log/slog"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/internal/universe"
	pkgcore "lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a universe to the ebiten.Game interface.
type Game struct {
	sim     *universe.Universe
	layout  render.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	log     *slog.Logger

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided universe.
func New(sim *universe.Universe, cfg *Config, logger *slog.Logger) *Game {
	size := sim.Size()
	layout := render.Layout{Rows: size.H, Cols: size.W, CellSize: cfg.CellSize, Border: cfg.Border}
	return &Game{
		sim:     sim,
		layout:  layout,
		painter: render.NewGridPainter(layout, render.DefaultPalette()),
		hud:     ui.NewHUD(sim),
		stepper: core.NewFixedStep(cfg.Rate),
		log:     logger,
		paused:  cfg.Paused,
		seed:    sim.Seed(),
	}
}

// Reset reinitializes the universe with the provided seed.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(pkgcore.ClockSeed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.layout.CellAt(x, y); ok {
			if err := g.sim.Toggle(row, col); err != nil {
				g.log.Warn("toggle failed", "err", err)
			}
		}
	}

	if g.tickOnce || (!g.paused && g.stepper.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells())
	w, h := g.painter.Size()
	g.hud.Draw(screen, h, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w, h + ui.Height
}
