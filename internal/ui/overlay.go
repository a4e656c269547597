//go:build ebiten

package ui

import (
	"image/color"

	"fluid-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type activityProvider interface {
	Activity() []float32
}

// Overlay draws optional debugging visuals and the brush cursor on top of
// the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showActivity bool
	showGrid     bool
	maskImg      *ebiten.Image
	maskBuf      []byte
	pixel        *ebiten.Image

	brush  string
	radius int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays and records the active brush for the cursor.
func (o *Overlay) Update(brush string, radius int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showActivity = !o.showActivity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.brush = brush
	o.radius = radius
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.Area()
	if total == 0 {
		return
	}
	if o.showActivity {
		if provider, ok := o.sim.(activityProvider); ok {
			o.drawActivity(screen, provider.Activity(), size)
		}
	}
	if o.showGrid && o.scale >= 4 {
		o.drawGrid(screen, size)
	}
	o.drawCursor(screen, size)
}

func (o *Overlay) drawActivity(screen *ebiten.Image, mask []float32, size core.Size) {
	total := size.Area()
	if len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.maskBuf, mask, color.RGBA{R: 255, G: 200, B: 60})
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	col := color.RGBA{R: 40, G: 40, B: 48, A: 90}
	w := float64(size.W * o.scale)
	h := float64(size.H * o.scale)
	for x := 1; x < size.W; x++ {
		o.fillRect(screen, float64(x*o.scale), 0, 1, h, col)
	}
	for y := 1; y < size.H; y++ {
		o.fillRect(screen, 0, float64(y*o.scale), w, 1, col)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image, size core.Size) {
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/o.scale, my/o.scale
	if !size.Contains(cx, cy) {
		return
	}
	col := brushColor(o.brush)
	span := float64((2*o.radius + 1) * o.scale)
	x := float64((cx - o.radius) * o.scale)
	y := float64((cy - o.radius) * o.scale)
	o.fillRect(screen, x, y, span, 1, col)
	o.fillRect(screen, x, y+span-1, span, 1, col)
	o.fillRect(screen, x, y, 1, span, col)
	o.fillRect(screen, x+span-1, y, 1, span, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
