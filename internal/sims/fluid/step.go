package fluid

// StepStats summarizes the water moved during one tick.
type StepStats struct {
	Fell    int
	Spread  int
	Settled int
}

// Quiescent reports whether the tick changed nothing.
func (s StepStats) Quiescent() bool {
	return s.Fell == 0 && s.Spread == 0 && s.Settled == 0
}

// Step advances the grid by one tick: gravity, then sideways leveling, then
// settling of residue. Source levels and neighbor pressure are read from the
// live grid; destination capacity is read from the scratch grid so no cell
// is ever filled past MaxWater.
func (g *Grid) Step(p Params) StepStats {
	p = p.normalized()
	var stats StepStats

	copy(g.nxt, g.cur)

	w, h := g.size.W, g.size.H
	// Bottom-up, skipping the floor and both side walls.
	for y := h - 2; y >= 0; y-- {
		for x := 1; x < w-1; x++ {
			src := g.cur[g.size.Index(x, y)]
			if src.Kind != KindEmpty || src.Water <= 0 {
				continue
			}
			if moved := g.fall(x, y, src.Water, p); moved > 0 {
				stats.Fell += moved
				continue
			}
			if src.Water <= p.MinSpreadLevel {
				continue
			}
			stats.Spread += g.spread(x, y, src.Water, p)
		}
	}

	g.cur, g.nxt = g.nxt, g.cur
	stats.Settled = g.settle(p.SettleThreshold)
	g.trackActivity()
	return stats
}

func (g *Grid) fall(x, y, water int, p Params) int {
	below := &g.nxt[g.size.Index(x, y+1)]
	if below.Kind != KindEmpty || below.Water >= g.maxWater {
		return 0
	}
	amount := min(water, p.GravityRate, g.maxWater-below.Water)
	if amount <= 0 {
		return 0
	}
	g.nxt[g.size.Index(x, y)].Water -= amount
	below.Water += amount
	return amount
}

func (g *Grid) spread(x, y, water int, p Params) int {
	left := g.sideFlow(x-1, y, water, p)
	right := g.sideFlow(x+1, y, water, p)
	if left == 0 && right == 0 {
		return 0
	}

	src := &g.nxt[g.size.Index(x, y)]
	if p.ClampOutflow {
		left = min(left, src.Water)
		right = min(right, src.Water-left)
	}
	src.Water -= left + right
	if src.Water < 0 {
		src.Water = 0
	}
	if left > 0 {
		g.nxt[g.size.Index(x-1, y)].Water += left
	}
	if right > 0 {
		g.nxt[g.size.Index(x+1, y)].Water += right
	}
	return left + right
}

// sideFlow computes the water offered to the neighbor at (nx, y) by a source
// holding water.
func (g *Grid) sideFlow(nx, y, water int, p Params) int {
	if !g.InBounds(nx, y) {
		return 0
	}
	idx := g.size.Index(nx, y)
	n := g.cur[idx]
	if n.Kind != KindEmpty {
		return 0
	}
	diff := water - n.Water
	if diff <= p.PressureThreshold {
		return 0
	}
	room := g.maxWater - g.nxt[idx].Water
	return max(0, min(diff/p.PressureDivisor, p.FlowRate, room))
}

func (g *Grid) settle(threshold int) int {
	removed := 0
	for i := range g.cur {
		c := &g.cur[i]
		if c.Water > 0 && c.Water < threshold {
			removed += c.Water
			c.Water = 0
		}
	}
	return removed
}

// trackActivity compares the committed grid against the pre-tick snapshot,
// which the swap left in the scratch buffer.
func (g *Grid) trackActivity() {
	scale := float32(g.maxWater)
	for i := range g.cur {
		d := g.cur[i].Water - g.nxt[i].Water
		if d < 0 {
			d = -d
		}
		g.activity[i] = float32(d) / scale
	}
}
