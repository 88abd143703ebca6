// internal/system/utils.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/types"
	"go-invaders/internal/utils"
)

// SpawnLaser creates a laser at (x, y) moving up for the player and down for
// enemies.
func SpawnLaser(ecs *entity.ECS, x, y float64, fromPlayer bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Movables[id] = &component.Movable{AutoDespawn: true}
	ecs.Lasers[id] = &component.Laser{FromPlayer: fromPlayer}
	if fromPlayer {
		ecs.Velocities[id] = &component.Velocity{X: 0, Y: 1}
		ecs.Sprites[id] = &component.Sprite{
			Kind:   component.SpritePlayerLaser,
			Width:  config.PlayerLaserWidth,
			Height: config.PlayerLaserHeight,
			Scale:  config.SpriteScale,
		}
	} else {
		ecs.Velocities[id] = &component.Velocity{X: 0, Y: -1}
		ecs.Sprites[id] = &component.Sprite{
			Kind:   component.SpriteEnemyLaser,
			Width:  config.EnemyLaserWidth,
			Height: config.EnemyLaserHeight,
			Scale:  config.SpriteScale,
		}
	}
	return id
}

// RequestExplosion queues an explosion at (x, y) for ExplosionSystem.
func RequestExplosion(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.ExplosionsToSpawn[id] = &component.ExplosionToSpawn{X: x, Y: y}
	return id
}

// overlaps checks the scaled sprite boxes of two positioned entities.
func overlaps(ecs *entity.ECS, a, b types.EntityID) bool {
	ap, aok := ecs.Positions[a]
	bp, bok := ecs.Positions[b]
	as, asok := ecs.Sprites[a]
	bs, bsok := ecs.Sprites[b]
	if !aok || !bok || !asok || !bsok {
		return false
	}
	aw, ah := as.Size()
	bw, bh := bs.Size()
	return utils.Collide(ap.X, ap.Y, aw, ah, bp.X, bp.Y, bw, bh)
}
