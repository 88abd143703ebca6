package main

import (
	"strings"
	"testing"
	"time"

	"go-invaders/internal/app"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsStopsWhenDoneWithFullChannel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()

	// Nobody reads out, so the send can never complete.
	out := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	returned := make(chan struct{})
	go func() {
		pumpEvents(screen, out, done)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("pumpEvents blocked on a full channel after done was closed")
	}
}

func TestPumpEventsForwardsEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}

	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, out, done)

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	select {
	case ev := <-out:
		key, ok := ev.(*tcell.EventKey)
		if !ok || key.Rune() != 'p' {
			t.Errorf("Expected the injected key, got %#v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No event forwarded")
	}
	screen.Fini()
}

func TestExitReport(t *testing.T) {
	summary := app.Summary{Seed: 3, Score: 500, Kills: 5}

	lines := exitReport(summary, "", nil)
	if len(lines) != 1 || lines[0] != summary.String() {
		t.Errorf("Expected only the summary, got %q", lines)
	}

	lines = exitReport(summary, "abc", []string{"1. 500  kills 5  now"})
	got := strings.Join(lines, "\n")
	for _, want := range []string{"saved as abc", "high scores:", "  1. 500  kills 5  now"} {
		if !strings.Contains(got, want) {
			t.Errorf("Report %q lacks %q", got, want)
		}
	}
}
