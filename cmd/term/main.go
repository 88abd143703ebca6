// cmd/term/main.go

// Command term plays the game in a terminal.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/termui"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
)

const frameTime = 16 * time.Millisecond

func main() {
	os.Exit(run())
}

// run returns the exit code so the log file and the database are closed
// before the process exits.
func run() int {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	tuningPath := flag.String("tuning", "", "JSON file with tuning overrides")
	dbPath := flag.String("db", "data/scores.db", "high-score database, empty to disable")
	logPath := flag.String("log", "", "log file; the terminal is busy drawing")
	flag.Parse()

	// Logging to the terminal would corrupt the frame.
	logOut, err := openLog(*logPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	defer logOut.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo})))

	session, err := app.OpenSession(app.Options{Seed: *seed, TuningPath: *tuningPath, DBPath: *dbPath})
	if err != nil {
		slog.Error("failed to start", "error", err)
		return 1
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		return 1
	}

	play(screen, session)
	screen.Fini()

	stored, err := session.Finish()
	if err != nil {
		slog.Error("failed to save run", "error", err)
		return 1
	}
	report := exitReport(session.Game.Summary(), stored.ID, session.HighScores(highScoreRows, time.Now()))
	for _, line := range report {
		os.Stdout.WriteString(line + "\n")
	}
	return 0
}

// highScoreRows is how many stored runs the exit report lists.
const highScoreRows = 5

// exitReport returns the lines printed once the terminal is released.
func exitReport(summary app.Summary, savedID string, highScores []string) []string {
	lines := []string{summary.String()}
	if savedID != "" {
		lines = append(lines, "saved as "+savedID)
	}
	if len(highScores) > 0 {
		lines = append(lines, "", "high scores:")
		for _, row := range highScores {
			lines = append(lines, "  "+row)
		}
	}
	return lines
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// pumpEvents forwards screen events to out until the screen is finalized or
// done is closed.
func pumpEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func play(screen tcell.Screen, session *app.Session) {
	renderer := termui.NewRenderer(screen)
	keys := termui.NewKeyControls(termui.DefaultHold)
	game := session.Game
	paused := false
	noticeUntil := time.Time{}

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, eventChan, done)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(ev, time.Now()) {
				case termui.ActionQuit:
					return
				case termui.ActionPause:
					paused = !paused
					renderer.SetPaused(paused)
				case termui.ActionCopy:
					if err := clipboard.WriteAll(game.Summary().String()); err != nil {
						slog.Warn("clipboard write failed", "error", err)
						renderer.SetNotice("clipboard unavailable")
					} else {
						renderer.SetNotice("summary copied")
					}
					noticeUntil = time.Now().Add(2 * time.Second)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			controls := keys.Controls(now)
			if !paused {
				game.Update(deltaTime, controls)
			}
			if !noticeUntil.IsZero() && now.After(noticeUntil) {
				renderer.SetNotice("")
				noticeUntil = time.Time{}
			}
			renderer.Draw(game, session.Best)
		}
	}
}
