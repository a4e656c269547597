package fluid

import "strconv"

// Screen geometry the default grid is derived from.
const (
	ScreenWidth     = 800
	ScreenHeight    = 600
	DefaultCellSize = 10
)

// Params holds the flow rates and thresholds for the water automaton.
type Params struct {
	// MaxWater is the capacity of a single cell.
	MaxWater int
	// GravityRate caps how much water falls into the cell below per tick.
	GravityRate int
	// FlowRate caps how much water moves to one side per tick.
	FlowRate int
	// MinSpreadLevel is the level a cell must exceed before it spreads sideways.
	MinSpreadLevel int
	// PressureThreshold is the level difference a neighbor must be below by
	// before it receives water.
	PressureThreshold int
	// PressureDivisor scales the level difference into a flow amount.
	PressureDivisor int
	// SettleThreshold zeroes any cell holding less water after a tick.
	SettleThreshold int
	// ClampOutflow limits combined sideways outflow to the water the source
	// actually holds. When false both flows are applied as computed and the
	// source level is floored at zero.
	ClampOutflow bool

	// BrushAmount is the water added per painted cell per frame.
	BrushAmount int
	// RainDrops is the number of drops released per tick while raining.
	RainDrops int
}

// Config controls the fluid simulation dimensions and rules.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Seed  int64
	// Scene names the starting layout stamped on every reset.
	Scene string

	Params Params
}

// DefaultConfig returns the standard configuration: an 80x60 grid of 10px
// cells covering an 800x600 window.
func DefaultConfig() Config {
	return Config{
		Width:    ScreenWidth / DefaultCellSize,
		Height:   ScreenHeight / DefaultCellSize,
		CellSize: DefaultCellSize,
		Seed:     1,
		Scene:    "empty",
		Params:   DefaultParams(),
	}
}

// DefaultParams returns the standard flow rules.
func DefaultParams() Params {
	return Params{
		MaxWater:          100,
		GravityRate:       50,
		FlowRate:          25,
		MinSpreadLevel:    10,
		PressureThreshold: 5,
		PressureDivisor:   3,
		SettleThreshold:   3,
		ClampOutflow:      true,
		BrushAmount:       50,
		RainDrops:         3,
	}
}

// minPressureDivisor is the smallest divisor that keeps a step from creating
// water. Without the outflow clamp both sides may draw diff/divisor, so the
// divisor must be at least 2.
func (p Params) minPressureDivisor() int {
	if p.ClampOutflow {
		return 1
	}
	return 2
}

func (p Params) normalized() Params {
	if p.MaxWater <= 0 {
		p.MaxWater = 1
	}
	if p.GravityRate < 0 {
		p.GravityRate = 0
	}
	if p.FlowRate < 0 {
		p.FlowRate = 0
	}
	p.PressureDivisor = max(p.PressureDivisor, p.minPressureDivisor())
	if p.SettleThreshold < 0 {
		p.SettleThreshold = 0
	}
	if p.BrushAmount < 0 {
		p.BrushAmount = 0
	}
	if p.RainDrops < 0 {
		p.RainDrops = 0
	}
	return p
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
			c.Width = ScreenWidth / parsed
			c.Height = ScreenHeight / parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if _, known := scenarios[v]; known {
			c.Scene = v
		}
	}
	parsePositive(cfg, "max_water", &c.Params.MaxWater)
	parseNonNegative(cfg, "gravity_rate", &c.Params.GravityRate)
	parseNonNegative(cfg, "flow_rate", &c.Params.FlowRate)
	parseNonNegative(cfg, "min_spread", &c.Params.MinSpreadLevel)
	parseNonNegative(cfg, "pressure_threshold", &c.Params.PressureThreshold)
	parsePositive(cfg, "pressure_divisor", &c.Params.PressureDivisor)
	parseNonNegative(cfg, "settle_threshold", &c.Params.SettleThreshold)
	parseNonNegative(cfg, "brush_amount", &c.Params.BrushAmount)
	parseNonNegative(cfg, "rain_drops", &c.Params.RainDrops)
	if v, ok := cfg["clamp_outflow"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.ClampOutflow = parsed
		}
	}
	c.Params = c.Params.normalized()
	return c
}

func parsePositive(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func parseNonNegative(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}
