// internal/system/formation.go
package system

import (
	"go-invaders/internal/entity"
	"go-invaders/internal/formation"
)

// FormationSystem moves every invader one tick along its own flight path.
type FormationSystem struct {
	ecs *entity.ECS
}

func NewFormationSystem(ecs *entity.ECS) *FormationSystem {
	return &FormationSystem{ecs: ecs}
}

// Update advances each enemy independently; tick is the fixed step.
func (s *FormationSystem) Update(tick float64) {
	for id, f := range s.ecs.Formations {
		if _, isEnemy := s.ecs.Enemies[id]; !isEnemy {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		next, angle := formation.Advance(formation.Vec2{X: pos.X, Y: pos.Y}, *f, tick)
		pos.X, pos.Y = next.X, next.Y
		f.Angle = angle
	}
}
