// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by f in [0, 1], keeping alpha.
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// WorldToScreen converts world coordinates (origin at the centre, y up) to
// screen pixels (origin top-left, y down).
func WorldToScreen(x, y, screenW, screenH float64) (float64, float64) {
	return x + screenW/2, screenH/2 - y
}
