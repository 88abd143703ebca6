// internal/state/pause_state.go
package state

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed underneath.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	highScores    []string
}

// highScoreRows is how many stored runs the pause overlay lists.
const highScoreRows = 5

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	slog.Debug("paused", "time", s.previousState.game.GameTime())
	s.highScores = s.previousState.session.HighScores(highScoreRows, time.Now())
}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.hud.DrawPaused(screen, s.highScores)
}

func (s *PauseState) Exit() {}
