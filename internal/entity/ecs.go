// internal/entity/ecs.go
package entity

import (
	"go-invaders/internal/component"
	"go-invaders/internal/formation"
	"go-invaders/internal/types"
)

type ECS struct {
	GameTime          float64
	NextID            types.EntityID
	Positions         map[types.EntityID]*component.Position
	Velocities        map[types.EntityID]*component.Velocity
	Movables          map[types.EntityID]*component.Movable
	Sprites           map[types.EntityID]*component.Sprite
	Enemies           map[types.EntityID]*component.Enemy
	Players           map[types.EntityID]*component.Player
	Lasers            map[types.EntityID]*component.Laser
	Formations        map[types.EntityID]*formation.Formation
	Explosions        map[types.EntityID]*component.Explosion
	ExplosionsToSpawn map[types.EntityID]*component.ExplosionToSpawn
	PlayerState       *component.PlayerState
	EnemyCount        *component.EnemyCount
	Score             *component.Score
}

func NewECS() *ECS {
	return &ECS{
		NextID:            1,
		Positions:         make(map[types.EntityID]*component.Position),
		Velocities:        make(map[types.EntityID]*component.Velocity),
		Movables:          make(map[types.EntityID]*component.Movable),
		Sprites:           make(map[types.EntityID]*component.Sprite),
		Enemies:           make(map[types.EntityID]*component.Enemy),
		Players:           make(map[types.EntityID]*component.Player),
		Lasers:            make(map[types.EntityID]*component.Laser),
		Formations:        make(map[types.EntityID]*formation.Formation),
		Explosions:        make(map[types.EntityID]*component.Explosion),
		ExplosionsToSpawn: make(map[types.EntityID]*component.ExplosionToSpawn),
		PlayerState:       component.NewPlayerState(),
		EnemyCount:        &component.EnemyCount{},
		Score:             &component.Score{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove drops id from every component map.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Movables, id)
	delete(ecs.Sprites, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Lasers, id)
	delete(ecs.Formations, id)
	delete(ecs.Explosions, id)
	delete(ecs.ExplosionsToSpawn, id)
}
