// internal/component/render.go
package component

// SpriteKind selects the image an entity is drawn with.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpritePlayerLaser
	SpriteEnemy
	SpriteEnemyLaser
)

// Sprite says what to draw and the unscaled size used for collisions.
type Sprite struct {
	Kind   SpriteKind
	Width  float64
	Height float64
	Scale  float64
}

// Size returns the on-screen size after scaling.
func (s Sprite) Size() (float64, float64) {
	return s.Width * s.Scale, s.Height * s.Scale
}
