package fluid

import "fluid-ca/internal/core"

// Kind enumerates cell types. Water is carried by Empty cells, never Solid.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSolid
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Cell is one grid position.
type Cell struct {
	Kind  Kind
	Water int
}

// Solid reports whether the cell is a wall.
func (c Cell) Solid() bool { return c.Kind == KindSolid }

// Grid owns the live cell buffer and the scratch buffer a tick writes into.
// The left, right and bottom edges are permanently solid.
type Grid struct {
	size     core.Size
	maxWater int

	cur []Cell
	nxt []Cell

	activity []float32
}

// NewGrid allocates a grid and stamps its border walls.
func NewGrid(w, h, maxWater int) *Grid {
	size := core.Size{W: w, H: h}.Clamp()
	if maxWater <= 0 {
		maxWater = 1
	}
	total := size.Area()
	g := &Grid{
		size:     size,
		maxWater: maxWater,
		cur:      make([]Cell, total),
		nxt:      make([]Cell, total),
		activity: make([]float32, total),
	}
	g.Init()
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// MaxWater reports the per-cell capacity.
func (g *Grid) MaxWater() int { return g.maxWater }

// Init clears every cell to dry Empty and rebuilds the border walls.
func (g *Grid) Init() {
	for i := range g.cur {
		g.cur[i] = Cell{}
		g.nxt[i] = Cell{}
		g.activity[i] = 0
	}
	w, h := g.size.W, g.size.H
	for y := 0; y < h; y++ {
		g.cur[g.size.Index(0, y)] = Cell{Kind: KindSolid}
		g.cur[g.size.Index(w-1, y)] = Cell{Kind: KindSolid}
	}
	for x := 0; x < w; x++ {
		g.cur[g.size.Index(x, h-1)] = Cell{Kind: KindSolid}
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool { return g.size.Contains(x, y) }

// IsBorder reports whether (x, y) is one of the permanent walls.
func (g *Grid) IsBorder(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return x == 0 || x == g.size.W-1 || y == g.size.H-1
}

// At returns the live cell at (x, y).
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cur[g.size.Index(x, y)], true
}

// AddWater pours amount into an Empty cell, clamped to [0, MaxWater]. It
// reports whether the cell accepted the call.
func (g *Grid) AddWater(x, y, amount int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	c := &g.cur[g.size.Index(x, y)]
	if c.Kind != KindEmpty {
		return false
	}
	amount = clampInt(amount, -g.maxWater, g.maxWater)
	c.Water = clampInt(c.Water+amount, 0, g.maxWater)
	return true
}

// AddSolid turns the cell into a wall, discarding any water it held.
func (g *Grid) AddSolid(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cur[g.size.Index(x, y)] = Cell{Kind: KindSolid}
	return true
}

// RemoveCell clears a non-border cell to dry Empty.
func (g *Grid) RemoveCell(x, y int) bool {
	if !g.InBounds(x, y) || g.IsBorder(x, y) {
		return false
	}
	g.cur[g.size.Index(x, y)] = Cell{}
	return true
}

// Each visits the live cells in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	w := g.size.W
	for i, c := range g.cur {
		fn(i%w, i/w, c)
	}
}

// TotalWater sums the water held by the live grid.
func (g *Grid) TotalWater() int {
	total := 0
	for _, c := range g.cur {
		total += c.Water
	}
	return total
}

// Activity exposes the per-cell change from the last tick, normalized to
// MaxWater.
func (g *Grid) Activity() []float32 { return g.activity }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
