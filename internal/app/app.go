//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fluid-ca/internal/core"
	"fluid-ca/internal/render"
	"fluid-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type rainToggler interface {
	Raining() bool
	SetRaining(bool)
}

// Game adapts a core simulation to the ebiten.Game interface. Input is
// applied at the top of Update, before the tick, so a step never observes a
// half-applied edit.
type Game struct {
	sim     core.Sim
	editor  Editor
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	palette []color.RGBA

	brush       Brush
	brushRadius int
	stroke      Stroke

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	scale := cfg.EffectiveScale(sim)
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		pacer:    core.NewFixedStep(cfg.SimTPS),
		palette:  []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:    scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	if ed, ok := sim.(Editor); ok {
		g.editor = ed
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.stroke.Release()
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
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if rt, ok := g.sim.(rainToggler); ok {
			rt.SetRaining(!rt.Raining())
		}
	}
	g.updateBrush()

	if g.overlay != nil {
		g.overlay.Update(g.brush.String(), g.brushRadius)
	}
	if g.hud != nil {
		g.hud.Update(g.gridWidth(), g.paused)
	}

	g.paint()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) updateBrush() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.brush = BrushWater
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.brush = BrushSolid
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.brush = BrushErase
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brushRadius < 8 {
		g.brushRadius++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brushRadius > 0 {
		g.brushRadius--
	}
}

// paint routes mouse drags on the grid area to the editor: left paints the
// active brush, right erases.
func (g *Game) paint() {
	if g.editor == nil {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	mx, my := ebiten.CursorPosition()
	if (!left && !right) || mx >= g.gridWidth() {
		g.stroke.Release()
		return
	}
	brush := g.brush
	if right {
		brush = BrushErase
	}
	cx, cy := render.CellAt(mx, my, g.scale)
	g.stroke.Drag(g.editor, brush, cx, cy, g.brushRadius)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.gridWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }
