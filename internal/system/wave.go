// internal/system/wave.go
package system

import (
	"log/slog"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/formation"
	"go-invaders/internal/types"
)

// EnemySpawnSystem admits a new invader every spawn interval while fewer
// than EnemyMax are alive. Invaders get their flight path from the Maker,
// sized to the logical playfield; frontends scale that playfield, they never
// resize it.
type EnemySpawnSystem struct {
	ecs             *entity.ECS
	maker           *formation.Maker
	eventDispatcher *event.Dispatcher
	window          formation.WindowSize
	enemyMax        int
	batchMax        int
	interval        float64
	spawnTimer      float64
}

func NewEnemySpawnSystem(ecs *entity.ECS, maker *formation.Maker, eventDispatcher *event.Dispatcher, tuning config.Tuning) *EnemySpawnSystem {
	s := &EnemySpawnSystem{
		ecs:             ecs,
		maker:           maker,
		eventDispatcher: eventDispatcher,
		window:          formation.WindowSize{Width: config.ScreenWidth, Height: config.ScreenHeight},
		enemyMax:        tuning.EnemyMax,
		batchMax:        tuning.FormationMembersMax,
		interval:        tuning.EnemySpawnInterval.Seconds(),
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	return s
}

func (s *EnemySpawnSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer < s.interval {
		return
	}
	s.spawnTimer -= s.interval
	if s.ecs.EnemyCount.Count < s.enemyMax {
		s.spawnEnemy()
	}
}

func (s *EnemySpawnSystem) spawnEnemy() types.EntityID {
	f := s.maker.Produce(s.window, s.batchMax)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: f.Start.X, Y: f.Start.Y}
	s.ecs.Formations[id] = &f
	s.ecs.Enemies[id] = &component.Enemy{}
	s.ecs.Sprites[id] = &component.Sprite{
		Kind:   component.SpriteEnemy,
		Width:  config.EnemyWidth,
		Height: config.EnemyHeight,
		Scale:  config.SpriteScale,
	}
	s.ecs.EnemyCount.Count++

	slog.Debug("enemy spawned", "id", id, "count", s.ecs.EnemyCount.Count,
		"batch_members", s.maker.Members(), "start_x", f.Start.X, "start_y", f.Start.Y)
	s.eventDispatcher.Queue(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}

func (s *EnemySpawnSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed && s.ecs.EnemyCount.Count > 0 {
		s.ecs.EnemyCount.Count--
	}
}
