// internal/component/enemy.go
package component

// Enemy marks an invader. Its flight path lives in ECS.Formations.
type Enemy struct{}

// EnemyCount tracks live invaders against the configured maximum.
type EnemyCount struct {
	Count int
}
