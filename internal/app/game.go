// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/formation"
	"go-invaders/internal/system"
	"go-invaders/internal/utils"
	"go-invaders/pkg/render"
)

// Summary describes a finished or running game.
type Summary struct {
	Seed     int64
	Score    int
	Kills    int
	Deaths   int
	Elapsed  float64 // game seconds
	Ticks    uint64
	Launched int // lasers fired by the player
	Spawned  int // enemies that entered the field
	Lives    int // player ships that entered the field
}

// String formats the summary for logs and the clipboard.
func (s Summary) String() string {
	return fmt.Sprintf("score %d | kills %d | deaths %d | %.1fs | seed %d",
		s.Score, s.Kills, s.Deaths, s.Elapsed, s.Seed)
}

// Game holds the simulation: the ECS, its systems and the formation maker.
// It knows nothing about windows or terminals; frontends feed it Controls
// and draw what is in ECS.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Maker           *formation.Maker
	Stars           *render.Starfield
	Tuning          config.Tuning

	EnemySpawnSystem *system.EnemySpawnSystem
	FormationSystem  *system.FormationSystem
	EnemyFireSystem  *system.EnemyFireSystem
	PlayerSystem     *system.PlayerSystem
	MovableSystem    *system.MovableSystem
	CollisionSystem  *system.CollisionSystem
	ExplosionSystem  *system.ExplosionSystem
	ScoreSystem      *system.ScoreSystem

	accumulator float64
	ticks       uint64
	launched    int
	spawned     int
	lives       int
	pendingFire bool
}

// NewGame wires a game from a seed (0 picks one) and tuning.
func NewGame(seed int64, tuning config.Tuning) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	maker := formation.NewMaker(rng, tuning.BaseSpeed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Maker:           maker,
		Stars:           render.NewStarfield(rng.Seed(), config.StarCount, config.ScreenWidth, config.ScreenHeight, config.StarTwinkleRate),
		Tuning:          tuning,
	}
	g.EnemySpawnSystem = system.NewEnemySpawnSystem(ecs, maker, eventDispatcher, tuning)
	g.FormationSystem = system.NewFormationSystem(ecs)
	g.EnemyFireSystem = system.NewEnemyFireSystem(ecs, rng, eventDispatcher, tuning)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, tuning)
	g.MovableSystem = system.NewMovableSystem(ecs, tuning)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(ecs)
	g.ScoreSystem = system.NewScoreSystem(ecs, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LaserFired, listener)
	eventDispatcher.Subscribe(event.PlayerHit, listener)
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.PlayerSpawned, listener)

	slog.Info("game created", "seed", rng.Seed(), "enemy_max", tuning.EnemyMax,
		"formation_members_max", tuning.FormationMembersMax)
	return g
}

// Update advances the simulation by deltaTime seconds of real time in whole
// fixed ticks. A fire press is kept until the tick that consumes it, so a
// press on a short frame is not lost.
func (g *Game) Update(deltaTime float64, controls component.Controls) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if controls.Fire {
		g.pendingFire = true
	}
	g.accumulator += deltaTime
	for g.accumulator >= config.TimeStep {
		g.accumulator -= config.TimeStep
		controls.Fire = g.pendingFire
		g.pendingFire = false
		g.Step(controls)
	}
}

// Step runs exactly one tick.
func (g *Game) Step(controls component.Controls) {
	const tick = config.TimeStep
	g.ECS.GameTime += tick
	g.ticks++

	g.EnemySpawnSystem.Update(tick)
	g.PlayerSystem.Update(tick, controls)
	g.EnemyFireSystem.Update()
	g.FormationSystem.Update(tick)
	g.MovableSystem.Update(tick)
	g.PlayerSystem.ClampToWindow()
	g.CollisionSystem.Update()
	g.ExplosionSystem.Update(tick)

	g.EventDispatcher.Flush()
}

// GameTime returns elapsed game seconds.
func (g *Game) GameTime() float64 {
	return g.ECS.GameTime
}

// Summary returns the current run totals.
func (g *Game) Summary() Summary {
	score := g.ECS.Score
	return Summary{
		Seed:     g.Rng.Seed(),
		Score:    score.Points,
		Kills:    score.Kills,
		Deaths:   score.Deaths,
		Elapsed:  g.ECS.GameTime,
		Ticks:    g.ticks,
		Launched: g.launched,
		Spawned:  g.spawned,
		Lives:    g.lives,
	}
}

// GameEventListener handles game-level bookkeeping.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LaserFired:
		if fromPlayer, ok := e.Data.(bool); ok && fromPlayer {
			l.game.launched++
		}
	case event.PlayerHit:
		slog.Info("player hit", "time", l.game.ECS.GameTime, "deaths", l.game.ECS.Score.Deaths)
	case event.EnemySpawned:
		l.game.spawned++
	case event.PlayerSpawned:
		l.game.lives++
		slog.Debug("player spawned", "time", l.game.ECS.GameTime, "lives", l.game.lives)
	}
}
