package app

import (
	"flag"
	"fmt"
	"strings"
)

// Options collects repeatable key=value simulation overrides.
type Options map[string]string

func (o Options) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Options) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q: want key=value", value)
	}
	o[key] = strings.TrimSpace(val)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	SimTPS   int
	Seed     int64
	HUDWidth int
	Options  Options
}

// NewConfig returns a Config populated with sensible defaults. A zero Scale
// defers to the simulation's own cell size.
func NewConfig() *Config {
	return &Config{
		Sim:      "fluid",
		Scale:    0,
		TPS:      60,
		SimTPS:   20,
		Seed:     42,
		HUDWidth: 240,
		Options:  Options{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (0 uses the sim's cell size)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(c.Options, "set", "simulation option in key=value form (repeatable)")
}

// EffectiveScale resolves the pixel scale for a sim, preferring an explicit
// flag, then the sim's cell size, then 1.
func (c *Config) EffectiveScale(sim any) int {
	if c.Scale > 0 {
		return c.Scale
	}
	if sized, ok := sim.(interface{ CellSize() int }); ok && sized.CellSize() > 0 {
		return sized.CellSize()
	}
	return 1
}
