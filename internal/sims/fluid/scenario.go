package fluid

import (
	"fmt"
	"sort"
)

// scenarios stamp a starting layout through the public mutation API onto a
// freshly initialized grid.
var scenarios = map[string]func(g *Grid){
	"empty": func(*Grid) {},
	"drop": func(g *Grid) {
		w, h := g.size.W, g.size.H
		for y := 0; y < h/3; y++ {
			g.AddWater(w/2, y, g.maxWater)
		}
	},
	"dam": func(g *Grid) {
		w, h := g.size.W, g.size.H
		wall := w / 3
		// Leave the bottom cell open so the reservoir drains through.
		for y := h / 3; y < h-2; y++ {
			g.AddSolid(wall, y)
		}
		for y := h / 2; y < h-1; y++ {
			for x := 1; x < wall; x++ {
				g.AddWater(x, y, g.maxWater)
			}
		}
	},
	"basin": func(g *Grid) {
		w, h := g.size.W, g.size.H
		left, right := w/4, w-1-w/4
		for y := h / 2; y < h-1; y++ {
			g.AddSolid(left, y)
			g.AddSolid(right, y)
		}
		for x := w/2 - 1; x <= w/2+1; x++ {
			for y := 0; y < 3; y++ {
				g.AddWater(x, y, g.maxWater)
			}
		}
	},
	"stairs": func(g *Grid) {
		w, h := g.size.W, g.size.H
		steps := 4
		stepW := (w - 2) / (steps + 1)
		stepH := (h - 1) / (steps + 1)
		for s := 0; s < steps; s++ {
			top := h - 1 - (steps-s)*stepH
			for x := 1 + s*stepW; x < 1+(s+1)*stepW; x++ {
				g.AddSolid(x, top)
			}
		}
		for x := 1; x < 1+stepW; x++ {
			g.AddWater(x, 0, g.maxWater)
		}
	},
}

// Scenarios lists the available starting layouts in sorted order.
func Scenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resets the grid and stamps the named layout onto it.
func (g *Grid) Load(name string) error {
	stamp, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	g.Init()
	stamp(g)
	return nil
}
