package fluid

import (
	"image/color"
	"math"

	hsluv "github.com/hsluv/hsluv-go"
)

// Display values written to the Cells buffer.
const (
	DisplayDry uint8 = iota
	DisplayShallow
	DisplayMedium
	DisplayDeep
	DisplaySolid
)

const (
	waterHue        = 250.0
	waterSaturation = 90.0
)

var fluidPalette = buildFluidPalette()

// Palette exposes the color palette used for rendering the water grid.
func (f *Fluid) Palette() []color.RGBA {
	return fluidPalette
}

func buildFluidPalette() []color.RGBA {
	return []color.RGBA{
		DisplayDry:     {R: 12, G: 12, B: 16, A: 255},
		DisplayShallow: waterShade(72),
		DisplayMedium:  waterShade(52),
		DisplayDeep:    waterShade(34),
		DisplaySolid:   {R: 128, G: 128, B: 128, A: 255},
	}
}

func waterShade(lightness float64) color.RGBA {
	r, g, b := hsluv.HuslToRGB(waterHue, waterSaturation, lightness)
	return color.RGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// displayValue maps a cell into its palette slot. Water is banded at 40% and
// 80% of capacity.
func displayValue(c Cell, maxWater int) uint8 {
	if c.Kind == KindSolid {
		return DisplaySolid
	}
	switch {
	case c.Water <= 0:
		return DisplayDry
	case c.Water*5 < maxWater*2:
		return DisplayShallow
	case c.Water*5 < maxWater*4:
		return DisplayMedium
	default:
		return DisplayDeep
	}
}

func (f *Fluid) rebuildDisplay() {
	maxWater := f.grid.MaxWater()
	for i, c := range f.grid.cur {
		f.display[i] = displayValue(c, maxWater)
	}
}

func (f *Fluid) refreshCell(x, y int) {
	c, ok := f.grid.At(x, y)
	if !ok {
		return
	}
	f.display[f.grid.size.Index(x, y)] = displayValue(c, f.grid.MaxWater())
}
