// internal/system/enemy_fire.go
package system

import (
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/utils"
)

// EnemyFireSystem makes every invader shoot at once on a random tick.
type EnemyFireSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	chance          float64
}

func NewEnemyFireSystem(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, tuning config.Tuning) *EnemyFireSystem {
	return &EnemyFireSystem{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher, chance: tuning.EnemyFireChance}
}

// Update is called once per tick; it rolls the fire chance once for the
// whole squad.
func (s *EnemyFireSystem) Update() {
	if len(s.ecs.Enemies) == 0 || !s.rng.Chance(s.chance) {
		return
	}
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		SpawnLaser(s.ecs, pos.X, pos.Y-config.EnemyLaserOffsetY, false)
		s.eventDispatcher.Queue(event.Event{Type: event.LaserFired, Data: false})
	}
}
