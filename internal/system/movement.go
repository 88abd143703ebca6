// internal/system/movement.go
package system

import (
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/types"
)

// MovableSystem moves entities with a Velocity in straight lines and drops
// auto-despawning ones (lasers) once they leave the window by DespawnMargin.
type MovableSystem struct {
	ecs       *entity.ECS
	speed     float64
	halfW     float64
	halfH     float64
	despawned []types.EntityID
}

func NewMovableSystem(ecs *entity.ECS, tuning config.Tuning) *MovableSystem {
	return &MovableSystem{
		ecs:   ecs,
		speed: tuning.BaseSpeed,
		halfW: config.ScreenWidth / 2,
		halfH: config.ScreenHeight / 2,
	}
}

func (s *MovableSystem) Update(tick float64) {
	s.despawned = s.despawned[:0]
	for id, movable := range s.ecs.Movables {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.X * tick * s.speed
		pos.Y += vel.Y * tick * s.speed

		if movable.AutoDespawn && s.outside(pos.X, pos.Y) {
			s.despawned = append(s.despawned, id)
		}
	}
	for _, id := range s.despawned {
		s.ecs.Remove(id)
	}
}

func (s *MovableSystem) outside(x, y float64) bool {
	return x > s.halfW+config.DespawnMargin ||
		x < -s.halfW-config.DespawnMargin ||
		y > s.halfH+config.DespawnMargin ||
		y < -s.halfH-config.DespawnMargin
}
