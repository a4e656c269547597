package fluid

import "fluid-ca/internal/core"

// Sprinkle drops water into random interior cells of the top row and
// returns the total amount the grid accepted. Drops landing on walls are
// lost.
func (g *Grid) Sprinkle(rng *core.RNG, drops, amount int) int {
	interior := g.size.W - 2
	if rng == nil || interior <= 0 || drops <= 0 || amount <= 0 {
		return 0
	}
	added := 0
	for i := 0; i < drops; i++ {
		x := 1 + rng.IntN(interior)
		before, _ := g.At(x, 0)
		if !g.AddWater(x, 0, amount) {
			continue
		}
		after, _ := g.At(x, 0)
		added += after.Water - before.Water
	}
	return added
}
