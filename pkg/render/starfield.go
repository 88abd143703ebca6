// pkg/render/starfield.go
package render

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// Star is one background star in world coordinates at time zero.
type Star struct {
	X, Y  float64
	Depth float64 // 0.3 (far, slow, dim) .. 1 (near)
}

// Starfield is a slowly scrolling, twinkling background shared by the
// graphical and terminal frontends.
type Starfield struct {
	Stars   []Star
	width   float64
	height  float64
	speed   float64
	twinkle float64
	noise   opensimplex.Noise
}

// NewStarfield scatters count stars over a width x height area centred on
// the origin. The same seed always gives the same sky.
func NewStarfield(seed int64, count int, width, height, twinkleRate float64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:     (rng.Float64() - 0.5) * width,
			Y:     (rng.Float64() - 0.5) * height,
			Depth: 0.3 + 0.7*rng.Float64(),
		}
	}
	return &Starfield{
		Stars:   stars,
		width:   width,
		height:  height,
		speed:   12,
		twinkle: twinkleRate,
		noise:   opensimplex.NewNormalized(seed),
	}
}

// Position returns where star i is at game time t. Stars drift down and wrap
// around at the bottom edge; nearer stars move faster.
func (s *Starfield) Position(i int, t float64) (float64, float64) {
	star := s.Stars[i]
	y := star.Y - t*s.speed*star.Depth + s.height/2
	y = math.Mod(y, s.height)
	if y < 0 {
		y += s.height
	}
	return star.X, y - s.height/2
}

// Brightness returns star i's brightness in [0, 1] at game time t.
func (s *Starfield) Brightness(i int, t float64) float64 {
	n := s.noise.Eval2(float64(i)*3.7, t*s.twinkle)
	b := s.Stars[i].Depth * (0.4 + 0.6*n)
	return math.Max(0, math.Min(1, b))
}
