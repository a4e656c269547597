package fluid

import (
	"testing"

	"fluid-ca/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func water(t *testing.T, g *Grid, x, y int) int {
	t.Helper()
	c, ok := g.At(x, y)
	require.True(t, ok, "(%d,%d) out of bounds", x, y)
	return c.Water
}

func rowWater(g *Grid, y int) []int {
	row := make([]int, g.Size().W)
	for x := range row {
		c, _ := g.At(x, y)
		row[x] = c.Water
	}
	return row
}

func TestStepGravityTakesPrecedence(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddWater(5, 5, 100)

	stats := g.Step(DefaultParams())

	assert.Equal(t, 50, water(t, g, 5, 5))
	assert.Equal(t, 50, water(t, g, 5, 6))
	assert.Zero(t, water(t, g, 4, 5), "no sideways loss while falling")
	assert.Zero(t, water(t, g, 6, 5), "no sideways loss while falling")
	assert.Equal(t, StepStats{Fell: 50}, stats)
}

func TestStepGravityLimitedBySpaceBelow(t *testing.T) {
	g := NewGrid(10, 10, 100)
	// Seal (5,6) so it cannot drain during the tick.
	g.AddSolid(4, 6)
	g.AddSolid(6, 6)
	g.AddSolid(5, 7)
	g.AddWater(5, 6, 90)
	g.AddWater(5, 5, 100)

	g.Step(DefaultParams())

	assert.Equal(t, 90, water(t, g, 5, 5))
	assert.Equal(t, 100, water(t, g, 5, 6))
	assert.Zero(t, water(t, g, 4, 5))
	assert.Zero(t, water(t, g, 6, 5))
}

func TestStepBlockedGravitySpreadsBothWays(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddWater(5, 8, 100)

	stats := g.Step(DefaultParams())

	assert.Equal(t, []int{0, 0, 0, 0, 25, 50, 25, 0, 0, 0}, rowWater(g, 8))
	assert.Equal(t, StepStats{Spread: 50}, stats)
}

func TestStepSpreadTowardEmptierNeighbor(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddSolid(4, 8)
	g.AddWater(5, 8, 100)

	g.Step(DefaultParams())

	assert.Equal(t, 75, water(t, g, 5, 8))
	assert.Equal(t, 25, water(t, g, 6, 8))
}

func TestStepSpreadGates(t *testing.T) {
	tests := []struct {
		name         string
		source       int
		neighbor     int
		wantSource   int
		wantNeighbor int
	}{
		{name: "at min spread level", source: 10, neighbor: 0, wantSource: 10, wantNeighbor: 0},
		{name: "difference at threshold", source: 20, neighbor: 15, wantSource: 20, wantNeighbor: 15},
		{name: "difference above threshold", source: 21, neighbor: 15, wantSource: 19, wantNeighbor: 17},
		{name: "capped by pressure divisor", source: 40, neighbor: 10, wantSource: 30, wantNeighbor: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 10, 100)
			g.AddSolid(3, 8)
			g.AddSolid(6, 8)
			g.AddWater(4, 8, tt.source)
			g.AddWater(5, 8, tt.neighbor)

			g.Step(DefaultParams())

			assert.Equal(t, tt.wantSource, water(t, g, 4, 8))
			assert.Equal(t, tt.wantNeighbor, water(t, g, 5, 8))
		})
	}
}

func TestStepSettlesResidue(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddSolid(4, 8)
	g.AddSolid(6, 8)
	g.AddWater(5, 8, 2)

	stats := g.Step(DefaultParams())

	assert.Zero(t, water(t, g, 5, 8))
	assert.Equal(t, StepStats{Settled: 2}, stats)
}

func TestStepClampsCombinedOutflow(t *testing.T) {
	p := DefaultParams()
	p.PressureDivisor = 1

	g := NewGrid(10, 10, 100)
	g.AddWater(5, 8, 30)
	g.Step(p)
	assert.Equal(t, []int{0, 0, 0, 0, 25, 0, 5, 0, 0, 0}, rowWater(g, 8))
	assert.Equal(t, 30, g.TotalWater())

	p.ClampOutflow = false
	g = NewGrid(10, 10, 100)
	g.AddWater(5, 8, 30)
	g.Step(p)
	assert.Equal(t, []int{0, 0, 0, 0, 15, 0, 15, 0, 0, 0}, rowWater(g, 8),
		"unclamped outflow runs with a divisor of at least 2")
	assert.Equal(t, 30, g.TotalWater())
	requireInvariants(t, g)
}

func TestStepSolidCellsNeverReceiveWater(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddSolid(5, 6)
	g.AddSolid(4, 5)
	g.AddWater(5, 5, 100)

	for i := 0; i < 5; i++ {
		g.Step(DefaultParams())
	}
	requireInvariants(t, g)
}

func TestStepConservesOrLosesWater(t *testing.T) {
	unclamped := DefaultParams()
	unclamped.ClampOutflow = false
	unclamped.PressureDivisor = 1
	clampedSteep := DefaultParams()
	clampedSteep.PressureDivisor = 1

	for name, p := range map[string]Params{
		"defaults":        DefaultParams(),
		"clamped steep":   clampedSteep,
		"unclamped steep": unclamped,
	} {
		t.Run(name, func(t *testing.T) {
			sweepConservation(t, p)
		})
	}
}

func sweepConservation(t *testing.T, p Params) {
	t.Helper()
	for seed := int64(1); seed <= 20; seed++ {
		rng := core.NewRNG(seed)
		g := NewGrid(20, 15, 100)
		for i := 0; i < 60; i++ {
			x, y := rng.IntN(20), rng.IntN(15)
			if rng.IntN(10) < 3 {
				if !g.IsBorder(x, y) {
					g.AddSolid(x, y)
				}
				continue
			}
			g.AddWater(x, y, 1+rng.IntN(100))
		}

		prev := g.TotalWater()
		for i := 0; i < 200; i++ {
			stats := g.Step(p)
			total := g.TotalWater()
			require.LessOrEqual(t, total, prev, "seed %d tick %d gained water", seed, i)
			require.Equal(t, prev-stats.Settled, total, "seed %d tick %d: only settling removes water", seed, i)
			prev = total
			requireInvariants(t, g)
		}
	}
}

func TestStepReachesQuiescence(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddWater(5, 0, 100)

	ticks := 0
	for ; ticks < 200; ticks++ {
		if g.Step(DefaultParams()).Quiescent() {
			break
		}
	}
	require.Less(t, ticks, 200, "water never came to rest")
	assert.Equal(t, 100, g.TotalWater())
	assert.Equal(t, []int{0, 0, 10, 12, 17, 22, 17, 12, 10, 0}, rowWater(g, 8))

	settled := snapshot(g)
	g.Step(DefaultParams())
	assert.Equal(t, settled, snapshot(g), "a settled grid stays put")
}

func TestStepDeterministic(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(16, 12, 100)
		g.AddWater(3, 1, 100)
		g.AddWater(9, 4, 70)
		g.AddSolid(6, 8)
		g.AddSolid(7, 8)
		return g
	}
	a, b := build(), build()
	for i := 0; i < 40; i++ {
		a.Step(DefaultParams())
		b.Step(DefaultParams())
	}
	assert.Equal(t, snapshot(a), snapshot(b))
}

func TestStepTracksActivity(t *testing.T) {
	g := NewGrid(10, 10, 100)
	g.AddWater(5, 5, 100)
	g.Step(DefaultParams())

	act := g.Activity()
	size := g.Size()
	assert.InDelta(t, 0.5, act[size.Index(5, 5)], 1e-6)
	assert.InDelta(t, 0.5, act[size.Index(5, 6)], 1e-6)
	assert.Zero(t, act[size.Index(2, 2)])
}

func TestSprinkleDeterministic(t *testing.T) {
	a := NewGrid(12, 8, 100)
	b := NewGrid(12, 8, 100)

	addedA := a.Sprinkle(core.NewRNG(7), 5, 30)
	addedB := b.Sprinkle(core.NewRNG(7), 5, 30)

	assert.Equal(t, snapshot(a), snapshot(b))
	assert.Equal(t, addedA, addedB)
	assert.Equal(t, a.TotalWater(), addedA)
	assert.Positive(t, addedA)
	for x := 0; x < 12; x++ {
		for y := 1; y < 8; y++ {
			c, _ := a.At(x, y)
			assert.Zero(t, c.Water, "rain only lands on the top row")
		}
	}

	assert.Zero(t, a.Sprinkle(nil, 5, 30))
	assert.Zero(t, a.Sprinkle(core.NewRNG(1), 0, 30))
}
