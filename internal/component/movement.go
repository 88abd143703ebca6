// internal/component/movement.go
package component

// Position is a world position with the origin at the window centre, y up.
type Position struct {
	X, Y float64
}

// Velocity is a direction in units of BaseSpeed, not pixels.
type Velocity struct {
	X, Y float64
}

// Movable marks entities moved by MovableSystem.
type Movable struct {
	AutoDespawn bool // remove once far enough outside the window
}
