package ui

import (
	"image/color"
	"math"
)

const (
	maxMaskAlpha  = 170.0
	glowBase      = 0.35
	glowRange     = 0.65
	intensityBias = 0.6
)

// fillMaskRGBA tints each cell by its mask intensity. Intensities are
// clamped to [0, 1]; zero leaves the pixel transparent.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxMaskAlpha * math.Pow(intensity, intensityBias)))
	}
}

// brushColor picks the cursor outline color for a brush name.
func brushColor(brush string) color.RGBA {
	switch brush {
	case "water":
		return color.RGBA{R: 90, G: 170, B: 255, A: 220}
	case "solid":
		return color.RGBA{R: 200, G: 200, B: 200, A: 220}
	default:
		return color.RGBA{R: 255, G: 110, B: 90, A: 220}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
