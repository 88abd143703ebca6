package render

import "testing"

func TestStarfieldDeterministic(t *testing.T) {
	a := NewStarfield(9, 40, 500, 700, 0.6)
	b := NewStarfield(9, 40, 500, 700, 0.6)
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs between identical seeds", i)
		}
		if a.Brightness(i, 3.2) != b.Brightness(i, 3.2) {
			t.Fatalf("star %d brightness differs between identical seeds", i)
		}
	}
}

func TestStarfieldStaysInBounds(t *testing.T) {
	sf := NewStarfield(1, 60, 500, 700, 0.6)
	for _, tm := range []float64{0, 0.5, 17, 250, 10000} {
		for i := range sf.Stars {
			x, y := sf.Position(i, tm)
			if x < -250 || x >= 250 || y < -350 || y >= 350 {
				t.Fatalf("t=%.1f star %d at (%.1f, %.1f) outside the field", tm, i, x, y)
			}
			if b := sf.Brightness(i, tm); b < 0 || b > 1 {
				t.Fatalf("t=%.1f star %d brightness %.3f outside [0, 1]", tm, i, b)
			}
		}
	}
}

func TestStarfieldDriftsDown(t *testing.T) {
	sf := NewStarfield(2, 1, 500, 700, 0.6)
	sf.Stars[0] = Star{X: 0, Y: 100, Depth: 1}
	_, y0 := sf.Position(0, 0)
	_, y1 := sf.Position(0, 1)
	if y1 >= y0 {
		t.Fatalf("expected the star to move down, got %.2f -> %.2f", y0, y1)
	}
}
