// internal/system/collision.go
package system

import (
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/types"
)

// CollisionSystem resolves laser hits: player lasers destroy invaders, enemy
// lasers destroy the player. Every entity is removed at most once per tick
// even when several lasers reach it together.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	hit             map[types.EntityID]bool
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		hit:             make(map[types.EntityID]bool),
	}
}

func (s *CollisionSystem) Update() {
	clear(s.hit)

	for laserID, laser := range s.ecs.Lasers {
		if laser.FromPlayer {
			s.laserVsEnemies(laserID)
		} else {
			s.laserVsPlayer(laserID)
		}
	}

	for id := range s.hit {
		s.ecs.Remove(id)
	}
}

func (s *CollisionSystem) laserVsEnemies(laserID types.EntityID) {
	for enemyID := range s.ecs.Enemies {
		if s.hit[enemyID] || !overlaps(s.ecs, laserID, enemyID) {
			continue
		}
		s.hit[laserID] = true
		s.hit[enemyID] = true

		pos := s.ecs.Positions[enemyID]
		RequestExplosion(s.ecs, pos.X, pos.Y)
		s.eventDispatcher.Queue(event.Event{Type: event.EnemyDestroyed, Data: enemyID})
		return
	}
}

func (s *CollisionSystem) laserVsPlayer(laserID types.EntityID) {
	for playerID := range s.ecs.Players {
		if s.hit[playerID] || !overlaps(s.ecs, laserID, playerID) {
			continue
		}
		s.hit[laserID] = true
		s.hit[playerID] = true

		pos := s.ecs.Positions[playerID]
		RequestExplosion(s.ecs, pos.X, pos.Y)
		s.ecs.PlayerState.Shot(s.ecs.GameTime)
		s.eventDispatcher.Queue(event.Event{Type: event.PlayerHit, Data: playerID})
		return
	}
}
