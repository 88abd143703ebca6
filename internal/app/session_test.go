package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-invaders/internal/component"
	"go-invaders/internal/persistence"
)

func TestSessionWithoutDatabase(t *testing.T) {
	s, err := OpenSession(Options{Seed: 5})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	s.Game.Step(component.Controls{})
	run, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if run.ID != "" {
		t.Errorf("Nothing should be stored without a database, got %+v", run)
	}
}

func TestSessionStoresRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "scores.db")

	s, err := OpenSession(Options{Seed: 5, DBPath: dbPath})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if s.Best != 0 {
		t.Errorf("Expected empty best, got %d", s.Best)
	}
	for i := 0; i < 120; i++ {
		s.Game.Step(component.Controls{})
	}
	s.Game.ECS.Score.Points = 700
	run, err := s.Finish()
	s.Close()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if run.ID == "" || run.Score != 700 || run.Seed != 5 {
		t.Errorf("Unexpected stored run %+v", run)
	}

	db, err := persistence.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	best, err := db.BestScore()
	if err != nil || best != 700 {
		t.Errorf("Expected best 700, got %d (%v)", best, err)
	}
}

func TestSessionSkipsEmptyRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	s, err := OpenSession(Options{DBPath: dbPath})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	defer s.Close()
	run, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if run.ID != "" {
		t.Errorf("A run with no ticks should not be stored")
	}
}

func TestSessionBadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSession(Options{TuningPath: path}); err == nil {
		t.Errorf("Expected a tuning error")
	}
}

func TestSessionHighScoresIncludeFinishedRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	s, err := OpenSession(Options{Seed: 9, DBPath: dbPath})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	defer s.Close()

	s.Game.Step(component.Controls{})
	s.Game.ECS.Score.Points = 12300
	s.Game.ECS.Score.Kills = 123
	run, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	lines := s.HighScores(5, run.Finished().Add(3*time.Hour))
	if len(lines) != 1 {
		t.Fatalf("Expected one high score line, got %v", lines)
	}
	if want := "1. 12,300  kills 123  3 hours ago"; lines[0] != want {
		t.Errorf("Expected %q, got %q", want, lines[0])
	}
}

func TestSessionHighScoresWithoutDatabase(t *testing.T) {
	s, err := OpenSession(Options{Seed: 9})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if lines := s.HighScores(5, time.Now()); len(lines) != 0 {
		t.Errorf("Expected no lines without a database, got %v", lines)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close without a database: %v", err)
	}
}
