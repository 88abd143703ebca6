// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/assets"
	"go-invaders/internal/config"
	"go-invaders/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// startProfile starts the profile named by mode, writing into dir. The
// returned func must run before the process exits or the profile is lost.
func startProfile(mode, dir string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop, nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred work, the profile in particular,
// finishes before the process exits.
func run() int {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	tuningPath := flag.String("tuning", "", "JSON file with tuning overrides")
	dbPath := flag.String("db", "data/scores.db", "high-score database, empty to disable")
	assetsDir := flag.String("assets", "assets", "directory with sprite PNGs")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	stopProfile, err := startProfile(*profileMode, ".")
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 2
	}
	defer stopProfile()

	session, err := app.OpenSession(app.Options{Seed: *seed, TuningPath: *tuningPath, DBPath: *dbPath})
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 1
	}
	defer session.Close()

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, session, assets.NewSpriteManager(*assetsDir)))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	runErr := ebiten.RunGame(appGame)

	if _, err := session.Finish(); err != nil {
		slog.Error("failed to save run", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		slog.Error("game loop failed", "error", runErr)
		return 1
	}
	return 0
}
