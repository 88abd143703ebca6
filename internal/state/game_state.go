// internal/state/game_state.go
package state

import (
	"log/slog"
	"time"

	game "go-invaders/internal/app"
	"go-invaders/internal/assets"
	"go-invaders/internal/component"
	"go-invaders/internal/system"
	"go-invaders/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const noticeDuration = 2 * time.Second

// GameState: состояние игры
type GameState struct {
	sm       *StateMachine
	session  *game.Session
	game     *game.Game
	renderer *system.RenderSystem
	hud      *ui.HUD
	best     int
}

// NewGameState wraps the session's running game. The stored best score is
// shown on the HUD.
func NewGameState(sm *StateMachine, session *game.Session, sprites *assets.SpriteManager) *GameState {
	g := session.Game
	return &GameState{
		sm:       sm,
		session:  session,
		game:     g,
		renderer: system.NewRenderSystem(g.ECS, sprites, g.Stars),
		hud:      ui.NewHUD(8, 4, nil),
		best:     session.Best,
	}
}

// Game returns the simulation behind the state.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}

	g.game.Update(deltaTime, pollControls())
	return nil
}

func pollControls() component.Controls {
	return component.Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// copySummary кладёт итог забега в буфер обмена.
func (g *GameState) copySummary() {
	summary := g.game.Summary().String()
	if clipboard.Unsupported {
		g.hud.Notify("clipboard unavailable", noticeDuration)
		return
	}
	if err := clipboard.WriteAll(summary); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		g.hud.Notify("clipboard unavailable", noticeDuration)
		return
	}
	g.hud.Notify("summary copied", noticeDuration)
}

func (g *GameState) stats() ui.Stats {
	s := g.game.Summary()
	return ui.Stats{Score: s.Score, Best: g.best, Kills: s.Kills, Deaths: s.Deaths}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.GameTime())
	g.hud.Draw(screen, g.stats())
}

func (g *GameState) Exit() {}
