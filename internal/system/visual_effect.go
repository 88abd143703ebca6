// internal/system/visual_effect.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/types"
)

// ExplosionSystem turns explosion requests into animated explosions and
// steps them through the sprite sheet.
type ExplosionSystem struct {
	ecs      *entity.ECS
	finished []types.EntityID
}

// NewExplosionSystem creates the explosion system.
func NewExplosionSystem(ecs *entity.ECS) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs}
}

// Update animates running explosions first, so one requested this tick
// shows frame 0 for a full frame time.
func (s *ExplosionSystem) Update(deltaTime float64) {
	s.finished = s.finished[:0]
	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime
		if explosion.Timer < config.ExplosionFrameTime {
			continue
		}
		explosion.Timer -= config.ExplosionFrameTime
		explosion.Frame++
		if explosion.Frame >= config.ExplosionLen {
			s.finished = append(s.finished, id)
		}
	}
	for _, id := range s.finished {
		s.ecs.Remove(id)
	}

	for requestID, request := range s.ecs.ExplosionsToSpawn {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: request.X, Y: request.Y}
		s.ecs.Explosions[id] = &component.Explosion{}
		delete(s.ecs.ExplosionsToSpawn, requestID)
	}
}
