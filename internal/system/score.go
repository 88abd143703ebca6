// internal/system/score.go
package system

import (
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
)

// ScoreSystem keeps the running score from destruction events.
type ScoreSystem struct {
	ecs *entity.ECS
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{ecs: ecs}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	eventDispatcher.Subscribe(event.PlayerHit, s)
	return s
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.ecs.Score.Kills++
		s.ecs.Score.Points += config.ScorePerEnemy
	case event.PlayerHit:
		s.ecs.Score.Deaths++
	}
}
