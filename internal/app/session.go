// internal/app/session.go
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go-invaders/internal/config"
	"go-invaders/internal/persistence"

	"github.com/dustin/go-humanize"
)

// Options are the settings shared by every frontend.
type Options struct {
	Seed       int64  // 0 picks one from the clock
	TuningPath string // optional JSON overrides
	DBPath     string // "" disables the high-score table
}

// Session is a game plus the store its result goes to.
type Session struct {
	Game *Game
	Best int
	db   *persistence.DB
}

// OpenSession loads tuning, opens the score database and creates the game.
func OpenSession(opts Options) (*Session, error) {
	tuning := config.DefaultTuning()
	if opts.TuningPath != "" {
		var err error
		tuning, err = config.LoadTuning(opts.TuningPath)
		if err != nil {
			return nil, err
		}
		slog.Info("tuning loaded", "path", opts.TuningPath)
	}

	s := &Session{}
	if opts.DBPath != "" {
		if dir := filepath.Dir(opts.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		db, err := persistence.Open(opts.DBPath)
		if err != nil {
			return nil, err
		}
		best, err := db.BestScore()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("read best score: %w", err)
		}
		s.db, s.Best = db, best
		slog.Info("database opened", "path", opts.DBPath, "best", best)
	}

	s.Game = NewGame(opts.Seed, tuning)
	return s, nil
}

// TopRuns returns up to limit stored runs, best first. Without a database
// it returns nil.
func (s *Session) TopRuns(limit int) ([]persistence.Run, error) {
	if s.db == nil {
		return nil, nil
	}
	return s.db.TopRuns(limit)
}

// HighScores formats the best stored runs for display, one per line.
// Errors are logged and give no lines.
func (s *Session) HighScores(limit int, now time.Time) []string {
	runs, err := s.TopRuns(limit)
	if err != nil {
		slog.Warn("failed to read high scores", "error", err)
		return nil
	}
	lines := make([]string, 0, len(runs))
	for i, r := range runs {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatRun(r, now)))
	}
	return lines
}

// FormatRun renders a stored run as "12,300  kills 123  3 hours ago".
func FormatRun(r persistence.Run, now time.Time) string {
	return fmt.Sprintf("%s  kills %d  %s",
		humanize.Comma(int64(r.Score)), r.Kills,
		humanize.RelTime(r.Finished(), now, "ago", "from now"))
}

// Finish stores the run if any time was played. The database stays open for
// HighScores until Close.
func (s *Session) Finish() (persistence.Run, error) {
	summary := s.Game.Summary()
	slog.Info("run finished", "summary", summary.String())
	if s.db == nil {
		return persistence.Run{}, nil
	}

	if summary.Ticks == 0 {
		return persistence.Run{}, nil
	}
	return s.db.SaveRun(persistence.Run{
		Score:       summary.Score,
		Kills:       summary.Kills,
		Deaths:      summary.Deaths,
		Seed:        summary.Seed,
		DurationSec: summary.Elapsed,
	})
}

// Close closes the score database, if one is open.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
