package render

import (
	"image/color"
	"testing"
)

func TestScaleColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %v", got)
	}
	if got := ScaleColor(c, 2); got != c {
		t.Fatalf("factor above 1 should clamp, got %v", got)
	}
	if got := ScaleColor(c, -1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("negative factor should give black, got %v", got)
	}
}

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(0, 0, 500, 700)
	if x != 250 || y != 350 {
		t.Fatalf("origin maps to (%.0f, %.0f), want (250, 350)", x, y)
	}
	x, y = WorldToScreen(-250, 350, 500, 700)
	if x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%.0f, %.0f), want (0, 0)", x, y)
	}
}
