// internal/component/projectile.go
package component

// Laser is a shot travelling in a straight line.
type Laser struct {
	FromPlayer bool // false for enemy fire
}
