// internal/formation/maker.go
package formation

import "math"

const (
	// SpawnMargin is how far outside the window new formations start.
	SpawnMargin = 100.0
	// PivotTopInset keeps the pivot below the top of the window.
	PivotTopInset = 50.0
	MinRadiusX    = 80.0
	MaxRadiusX    = 150.0
	RadiusY       = 100.0
)

// Rand is the randomness the Maker needs. utils.PRNGService satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Range returns a number in [lo, hi).
	Range(lo, hi float64) float64
}

// Maker hands out formations in batches: consecutive calls share one
// template until batchMax enemies received it, then a fresh one is rolled.
// It is not safe for concurrent use; the spawn system is its only caller.
type Maker struct {
	rng      Rand
	speed    float64
	template *Formation
	members  int
}

// NewMaker returns a Maker with no template. speed is copied into every
// generated formation.
func NewMaker(rng Rand, speed float64) *Maker {
	return &Maker{rng: rng, speed: speed}
}

// Produce returns the formation for the next enemy.
func (m *Maker) Produce(win WindowSize, batchMax int) Formation {
	if m.template != nil && m.members < batchMax {
		m.members++
		return *m.template
	}

	f := m.generate(win)
	m.template = &f
	m.members = 1
	return f
}

// Members returns how many enemies received the current template.
func (m *Maker) Members() int {
	return m.members
}

// Template returns a copy of the current template, if any.
func (m *Maker) Template() (Formation, bool) {
	if m.template == nil {
		return Formation{}, false
	}
	return *m.template, true
}

func (m *Maker) generate(win WindowSize) Formation {
	wSpan := win.Width/2 + SpawnMargin
	hSpan := win.Height/2 + SpawnMargin
	x := -wSpan
	if m.rng.Float64() < 0.5 {
		x = wSpan
	}
	y := m.rng.Range(-hSpan, hSpan)

	pivot := Vec2{
		X: m.rng.Range(-win.Width/4, win.Width/4),
		Y: m.rng.Range(0, win.Height/3-PivotTopInset),
	}
	radius := Vec2{X: m.rng.Range(MinRadiusX, MaxRadiusX), Y: RadiusY}

	return Formation{
		Start:  Vec2{X: x, Y: y},
		Radius: radius,
		Pivot:  pivot,
		Speed:  m.speed,
		Angle:  math.Atan2(y-pivot.Y, x-pivot.X),
	}
}
