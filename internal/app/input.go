package app

// Editor is the mutation surface the input adapter drives, in grid cells.
type Editor interface {
	AddWater(x, y, amount int) bool
	AddSolid(x, y int) bool
	RemoveCell(x, y int) bool
	BrushAmount() int
}

// Brush selects what a paint stroke does to the cells it touches.
type Brush uint8

const (
	BrushWater Brush = iota
	BrushSolid
	BrushErase
)

func (b Brush) String() string {
	switch b {
	case BrushWater:
		return "water"
	case BrushSolid:
		return "solid"
	case BrushErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Paint applies the brush to a square of cells centred on (cx, cy) and
// returns how many cells accepted it.
func Paint(ed Editor, b Brush, cx, cy, radius int) int {
	if ed == nil {
		return 0
	}
	if radius < 0 {
		radius = 0
	}
	applied := 0
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			var ok bool
			switch b {
			case BrushWater:
				ok = ed.AddWater(x, y, ed.BrushAmount())
			case BrushSolid:
				ok = ed.AddSolid(x, y)
			case BrushErase:
				ok = ed.RemoveCell(x, y)
			}
			if ok {
				applied++
			}
		}
	}
	return applied
}

// Stroke tracks a mouse drag so fast movements paint a continuous line
// instead of isolated dots.
type Stroke struct {
	active       bool
	lastX, lastY int
}

// Active reports whether a drag is in progress.
func (s *Stroke) Active() bool { return s.active }

// Drag paints from the previous drag position to (cx, cy) and returns how
// many cell edits were accepted.
func (s *Stroke) Drag(ed Editor, b Brush, cx, cy, radius int) int {
	if !s.active {
		s.active = true
		s.lastX, s.lastY = cx, cy
		return Paint(ed, b, cx, cy, radius)
	}
	applied := 0
	first := true
	line(s.lastX, s.lastY, cx, cy, func(x, y int) {
		// The start point was painted by the previous call.
		if first {
			first = false
			return
		}
		applied += Paint(ed, b, x, y, radius)
	})
	s.lastX, s.lastY = cx, cy
	return applied
}

// Release ends the current drag.
func (s *Stroke) Release() { s.active = false }

// line walks the cells between two points with Bresenham's algorithm,
// including both endpoints.
func line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
