// internal/formation/formation.go

// Package formation generates the elliptical flight paths enemies follow and
// advances an enemy along its path once per tick.
package formation

import "math"

// Vec2 is a point or extent in world space (origin at the window centre, y up).
type Vec2 struct {
	X, Y float64
}

// WindowSize is the size of the playfield at spawn time.
type WindowSize struct {
	Width, Height float64
}

// Formation describes one elliptical orbit around Pivot.
// It is a plain value: every enemy receives its own copy and only that copy's
// Angle changes afterwards.
type Formation struct {
	Start  Vec2    // spawn point; Start.X < 0 orbits counter-clockwise
	Radius Vec2    // semi-axes (rx, ry)
	Pivot  Vec2    // ellipse centre
	Speed  float64 // base speed, px per second
	Angle  float64 // current angular position, radians
}

// Direction returns +1 for enemies that entered from the left edge and -1 for
// those that entered from the right.
func (f Formation) Direction() float64 {
	if f.Start.X < 0 {
		return 1
	}
	return -1
}

// PointAt returns the point of the ellipse at the given angle.
func (f Formation) PointAt(angle float64) Vec2 {
	return Vec2{
		X: f.Radius.X*math.Cos(angle) + f.Pivot.X,
		Y: f.Radius.Y*math.Sin(angle) + f.Pivot.Y,
	}
}

// Advance moves pos one tick along f and returns the new position together
// with the angle to store back on the entity.
//
// The entity steps towards the next point of the ellipse by at most
// tick*Speed without overshooting it. The angle only moves forward once the
// entity has caught up with its target, so a far away enemy first flies
// straight to the orbit before it starts circling.
func Advance(pos Vec2, f Formation, tick float64) (Vec2, float64) {
	maxStep := tick * f.Speed

	angle := f.Angle + f.Direction()*f.Speed*tick/(math.Min(f.Radius.X, f.Radius.Y)*math.Pi/2)
	dst := f.PointAt(angle)

	dx := pos.X - dst.X
	dy := pos.Y - dst.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	ratio := 0.0
	if distance != 0 {
		ratio = maxStep / distance
	}

	x := pos.X - dx*ratio
	if dx > 0 {
		x = math.Max(x, dst.X)
	} else {
		x = math.Min(x, dst.X)
	}
	y := pos.Y - dy*ratio
	if dy > 0 {
		y = math.Max(y, dst.Y)
	} else {
		y = math.Min(y, dst.Y)
	}

	// Empirically tuned; the units do not match and that is intended.
	next := f.Angle
	if distance < maxStep*f.Speed/20 {
		next = angle
	}

	return Vec2{X: x, Y: y}, next
}
