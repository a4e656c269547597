package fluid

import "fluid-ca/internal/core"

// Fluid adapts the water grid to the core.Sim contract and keeps the
// display buffer in sync with every mutation.
type Fluid struct {
	cfg Config

	grid    *Grid
	display []uint8

	tick    uint64
	last    StepStats
	raining bool
	rng     *core.RNG
}

// New returns a fluid simulation with the provided dimensions using defaults.
func New(w, h int) *Fluid {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fluid simulation configured from the provided options.
func NewWithConfig(cfg Config) *Fluid {
	cfg.Params = cfg.Params.normalized()
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}
	grid := NewGrid(cfg.Width, cfg.Height, cfg.Params.MaxWater)
	size := grid.Size()
	cfg.Width, cfg.Height = size.W, size.H
	f := &Fluid{
		cfg:     cfg,
		grid:    grid,
		display: make([]uint8, size.Area()),
		rng:     core.NewRNG(cfg.Seed),
	}
	f.loadScene()
	f.rebuildDisplay()
	return f
}

// Name returns the simulation identifier.
func (f *Fluid) Name() string { return "fluid" }

// Size reports the grid dimensions.
func (f *Fluid) Size() core.Size { return f.grid.Size() }

// Cells exposes the display buffer of palette indices.
func (f *Fluid) Cells() []uint8 { return f.display }

// Grid exposes the underlying cell model for read-only queries.
func (f *Fluid) Grid() *Grid { return f.grid }

// Config returns the active configuration.
func (f *Fluid) Config() Config { return f.cfg }

// CellSize reports the pixel size of one cell.
func (f *Fluid) CellSize() int { return f.cfg.CellSize }

// Tick reports the number of steps taken since the last reset.
func (f *Fluid) Tick() uint64 { return f.tick }

// LastStats reports what the previous step moved.
func (f *Fluid) LastStats() StepStats { return f.last }

// Quiescent reports whether the previous step changed nothing.
func (f *Fluid) Quiescent() bool { return f.tick > 0 && f.last.Quiescent() }

// Raining reports whether rain is released each tick.
func (f *Fluid) Raining() bool { return f.raining }

// SetRaining toggles rain.
func (f *Fluid) SetRaining(on bool) { f.raining = on }

// Activity exposes the normalized per-cell change from the last step.
func (f *Fluid) Activity() []float32 { return f.grid.Activity() }

// Reset clears the grid back to an empty container. The seed drives rain;
// zero selects the configured seed.
func (f *Fluid) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.rng = core.NewRNG(effective)
	f.loadScene()
	f.tick = 0
	f.last = StepStats{}
	f.rebuildDisplay()
}

// Step releases rain if enabled and advances the water by one tick.
func (f *Fluid) Step() {
	if f.raining {
		f.grid.Sprinkle(f.rng, f.cfg.Params.RainDrops, f.cfg.Params.BrushAmount)
	}
	f.last = f.grid.Step(f.cfg.Params)
	f.tick++
	f.rebuildDisplay()
}

// AddWater pours water into a cell; see Grid.AddWater.
func (f *Fluid) AddWater(x, y, amount int) bool {
	if !f.grid.AddWater(x, y, amount) {
		return false
	}
	f.refreshCell(x, y)
	return true
}

// AddSolid places a wall; see Grid.AddSolid.
func (f *Fluid) AddSolid(x, y int) bool {
	if !f.grid.AddSolid(x, y) {
		return false
	}
	f.refreshCell(x, y)
	return true
}

// RemoveCell clears a cell; see Grid.RemoveCell.
func (f *Fluid) RemoveCell(x, y int) bool {
	if !f.grid.RemoveCell(x, y) {
		return false
	}
	f.refreshCell(x, y)
	return true
}

// Load switches to the named starting layout and applies it now. The
// layout is reapplied on every Reset.
func (f *Fluid) Load(scene string) error {
	if err := f.grid.Load(scene); err != nil {
		return err
	}
	f.cfg.Scene = scene
	f.tick = 0
	f.last = StepStats{}
	f.rebuildDisplay()
	return nil
}

func (f *Fluid) loadScene() {
	if err := f.grid.Load(f.cfg.Scene); err != nil {
		f.grid.Init()
	}
}

// BrushAmount reports the water added per painted cell.
func (f *Fluid) BrushAmount() int { return f.cfg.Params.BrushAmount }

func init() {
	core.Register("fluid", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
