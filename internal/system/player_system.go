// internal/system/player_system.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/types"
	"go-invaders/internal/utils"
)

// PlayerSystem respawns the ship, turns input into velocity and fires the
// twin lasers.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	respawnDelay    float64
	checkInterval   float64
	spawnTimer      float64
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, tuning config.Tuning) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		respawnDelay:    tuning.PlayerRespawnDelay,
		checkInterval:   config.PlayerSpawnCheckInterval.Seconds(),
	}
}

func (s *PlayerSystem) Update(deltaTime float64, controls component.Controls) {
	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.checkInterval {
		s.spawnTimer -= s.checkInterval
		s.trySpawn()
	}

	for id := range s.ecs.Players {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.X = controls.Direction()
		}
		if controls.Fire {
			s.fire(id)
		}
	}
}

// ClampToWindow keeps the ship inside the window horizontally. Run it after
// MovableSystem.
func (s *PlayerSystem) ClampToWindow() {
	for id := range s.ecs.Players {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		half := config.PlayerWidth * config.SpriteScale / 2
		pos.X = utils.Clamp(pos.X, -config.ScreenWidth/2+half, config.ScreenWidth/2-half)
	}
}

func (s *PlayerSystem) trySpawn() {
	state := s.ecs.PlayerState
	now := s.ecs.GameTime
	if state.On || !(state.LastShot == -1 || now > state.LastShot+s.respawnDelay) {
		return
	}

	bottom := -float64(config.ScreenHeight) / 2
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: 0,
		Y: bottom + config.PlayerHeight/2*config.SpriteScale + config.PlayerBottomGap,
	}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Movables[id] = &component.Movable{AutoDespawn: false}
	s.ecs.Players[id] = &component.Player{}
	s.ecs.Sprites[id] = &component.Sprite{
		Kind:   component.SpritePlayer,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Scale:  config.SpriteScale,
	}
	state.Spawned()
	s.eventDispatcher.Queue(event.Event{Type: event.PlayerSpawned, Data: id})
}

func (s *PlayerSystem) fire(id types.EntityID) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	offset := config.PlayerWidth/2*config.SpriteScale - config.PlayerLaserInset
	SpawnLaser(s.ecs, pos.X+offset, pos.Y, true)
	SpawnLaser(s.ecs, pos.X-offset, pos.Y, true)
	s.eventDispatcher.Queue(event.Event{Type: event.LaserFired, Data: true})
}
