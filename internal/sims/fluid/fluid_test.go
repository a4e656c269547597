package fluid

import (
	"slices"
	"testing"

	"fluid-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredAsFluid(t *testing.T) {
	factory, ok := core.Sims()["fluid"]
	require.True(t, ok, "fluid sim must register itself")

	sim := factory(map[string]string{"w": "20", "h": "12"})
	assert.Equal(t, "fluid", sim.Name())
	assert.Equal(t, core.Size{W: 20, H: 12}, sim.Size())
	assert.Len(t, sim.Cells(), 240)
}

func TestDefaultGridMatchesScreen(t *testing.T) {
	f := NewWithConfig(DefaultConfig())
	assert.Equal(t, core.Size{W: 80, H: 60}, f.Size())
	assert.Equal(t, 10, f.CellSize())
}

func TestDisplayBands(t *testing.T) {
	tests := []struct {
		cell Cell
		want uint8
	}{
		{Cell{}, DisplayDry},
		{Cell{Water: 1}, DisplayShallow},
		{Cell{Water: 39}, DisplayShallow},
		{Cell{Water: 40}, DisplayMedium},
		{Cell{Water: 79}, DisplayMedium},
		{Cell{Water: 80}, DisplayDeep},
		{Cell{Water: 100}, DisplayDeep},
		{Cell{Kind: KindSolid}, DisplaySolid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayValue(tt.cell, 100), "cell %+v", tt.cell)
	}
}

func TestPaletteCoversDisplayValues(t *testing.T) {
	f := New(8, 6)
	palette := f.Palette()
	require.Len(t, palette, int(DisplaySolid)+1)

	shallow, medium, deep := palette[DisplayShallow], palette[DisplayMedium], palette[DisplayDeep]
	lum := func(r, g, b uint8) int { return int(r) + int(g) + int(b) }
	assert.Greater(t, lum(shallow.R, shallow.G, shallow.B), lum(medium.R, medium.G, medium.B))
	assert.Greater(t, lum(medium.R, medium.G, medium.B), lum(deep.R, deep.G, deep.B))
	assert.Greater(t, deep.B, deep.R, "water reads as blue")
	for i, c := range palette {
		assert.Equal(t, uint8(255), c.A, "palette[%d] must be opaque", i)
	}
}

func TestMutationsRefreshDisplay(t *testing.T) {
	f := New(8, 6)
	size := f.Size()
	idx := size.Index(3, 2)

	require.True(t, f.AddWater(3, 2, 90))
	assert.Equal(t, DisplayDeep, f.Cells()[idx])

	require.True(t, f.AddSolid(3, 2))
	assert.Equal(t, DisplaySolid, f.Cells()[idx])

	require.True(t, f.RemoveCell(3, 2))
	assert.Equal(t, DisplayDry, f.Cells()[idx])

	assert.False(t, f.RemoveCell(0, 2))
	assert.Equal(t, DisplaySolid, f.Cells()[size.Index(0, 2)])
	assert.False(t, f.AddWater(99, 99, 10))
}

func TestStepAdvancesTickAndDisplay(t *testing.T) {
	f := New(10, 10)
	f.AddWater(5, 5, 100)
	require.False(t, f.Quiescent(), "nothing has run yet")

	f.Step()
	assert.Equal(t, uint64(1), f.Tick())
	assert.Equal(t, StepStats{Fell: 50}, f.LastStats())
	assert.Equal(t, DisplayMedium, f.Cells()[f.Size().Index(5, 6)])

	for i := 0; i < 200 && !f.Quiescent(); i++ {
		f.Step()
	}
	assert.True(t, f.Quiescent())
	assert.Equal(t, 100, f.Grid().TotalWater())
}

func TestResetClearsState(t *testing.T) {
	f := New(10, 8)
	f.AddWater(4, 2, 80)
	f.AddSolid(6, 3)
	f.Step()

	f.Reset(0)

	assert.Zero(t, f.Tick())
	assert.Zero(t, f.Grid().TotalWater())
	c, _ := f.Grid().At(6, 3)
	assert.Equal(t, Cell{}, c)
	fresh := New(10, 8)
	assert.True(t, slices.Equal(fresh.Cells(), f.Cells()))
}

func TestRainDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) []uint8 {
		f := New(16, 10)
		f.Reset(seed)
		f.SetRaining(true)
		for i := 0; i < 25; i++ {
			f.Step()
		}
		return slices.Clone(f.Cells())
	}

	first := run(5)
	assert.Equal(t, first, run(5))

	f := New(16, 10)
	f.SetRaining(true)
	f.Step()
	assert.Positive(t, f.Grid().TotalWater(), "rain adds water")

	f.SetRaining(false)
	f.Reset(0)
	f.Step()
	assert.Zero(t, f.Grid().TotalWater())
}

func TestSetIntParameterClamps(t *testing.T) {
	f := New(8, 6)

	require.True(t, f.SetIntParameter("gravity_rate", 20))
	assert.Equal(t, 20, f.Config().Params.GravityRate)

	require.True(t, f.SetIntParameter("pressure_divisor", 0))
	assert.Equal(t, 1, f.Config().Params.PressureDivisor)

	require.True(t, f.SetIntParameter("flow_rate", 500))
	assert.Equal(t, 100, f.Config().Params.FlowRate)

	assert.False(t, f.SetIntParameter("max_water", 10), "capacity is fixed")
	assert.False(t, f.SetIntParameter("clamp_outflow", 1))
	assert.False(t, f.SetIntParameter("nope", 1))
}

func TestSetBoolParameter(t *testing.T) {
	f := New(8, 6)
	require.True(t, f.SetIntParameter("pressure_divisor", 1))
	require.True(t, f.SetBoolParameter("clamp_outflow", false))
	assert.False(t, f.Config().Params.ClampOutflow)
	assert.Equal(t, 2, f.Config().Params.PressureDivisor, "unclamped outflow raises the divisor")

	require.True(t, f.SetIntParameter("pressure_divisor", 1))
	assert.Equal(t, 2, f.Config().Params.PressureDivisor)

	assert.False(t, f.SetBoolParameter("gravity_rate", true))
}

func TestUnclampedOutflowFromHUDKeepsWater(t *testing.T) {
	f := New(80, 60)
	require.True(t, f.SetBoolParameter("clamp_outflow", false))
	require.True(t, f.SetIntParameter("pressure_divisor", 1))
	f.AddWater(5, 58, 30)

	before := f.Grid().TotalWater()
	f.Step()
	assert.LessOrEqual(t, f.Grid().TotalWater(), before)
}

func TestParametersSnapshot(t *testing.T) {
	f := New(8, 6)
	values := map[string]string{}
	for _, group := range f.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "8", values["w"])
	assert.Equal(t, "50", values["gravity_rate"])
	assert.Equal(t, "true", values["clamp_outflow"])

	// Every HUD control must resolve to a snapshot value.
	for _, ctrl := range f.ParameterControls() {
		assert.Contains(t, values, ctrl.Key)
	}
}

func TestStatsReportState(t *testing.T) {
	f := New(10, 10)
	f.AddWater(5, 5, 60)
	f.Step()

	stats := map[string]string{}
	for _, p := range f.Stats() {
		stats[p.Key] = p.Value
	}
	assert.Equal(t, "1", stats["tick"])
	assert.Equal(t, "60", stats["total_water"])
	assert.Equal(t, "50", stats["fell"])
	assert.Equal(t, "flowing", stats["state"])
	assert.Equal(t, "off", stats["rain"])
}
