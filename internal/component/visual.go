// internal/component/visual.go
package component

// ExplosionToSpawn requests an explosion at a position; ExplosionSystem turns
// it into an Explosion on the next tick.
type ExplosionToSpawn struct {
	X, Y float64
}

// Explosion plays the explosion sheet frame by frame.
type Explosion struct {
	Frame int
	Timer float64 // time spent on the current frame
}
