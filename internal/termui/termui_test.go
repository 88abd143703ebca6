package termui

import (
	"strings"
	"testing"
	"time"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/config"

	"github.com/gdamore/tcell/v2"
)

func TestCellOf(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"centre", 0, 0, 25, 10, true},
		{"top left", -250, 350, 0, 0, true},
		{"right edge is off grid", 250, 0, 0, 0, false},
		{"below window", 0, -351, 0, 0, false},
		{"left of window", -300, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := CellOf(tt.x, tt.y, 50, 20)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (col != tt.col || row != tt.row) {
				t.Errorf("got (%d,%d), want (%d,%d)", col, row, tt.col, tt.row)
			}
		})
	}
}

func TestRendererDrawsPlayerAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(50, 21)

	tuning := config.DefaultTuning()
	tuning.EnemyMax = 0
	g := app.NewGame(3, tuning)
	for i := 0; i < 40; i++ {
		g.Step(component.Controls{})
	}
	if len(g.ECS.Players) != 1 {
		t.Fatalf("Expected a spawned player")
	}

	r := NewRenderer(screen)
	r.SetPaused(true)
	r.Draw(g, 1500)

	if ch, _, _, _ := screen.GetContent(25, 19); ch != glyphPlayer {
		t.Errorf("Expected player glyph at (25,19), got %q", ch)
	}

	var status []rune
	for x := 0; x < 50; x++ {
		ch, _, _, _ := screen.GetContent(x, 20)
		status = append(status, ch)
	}
	line := string(status)
	for _, want := range []string{"SCORE 0", "BEST 1,500", "DEATHS 0", "PAUSED"} {
		if !strings.Contains(line, want) {
			t.Errorf("Status %q lacks %q", line, want)
		}
	}
}

func key(k tcell.Key, ch rune) *tcell.EventKey {
	return tcell.NewEventKey(k, ch, tcell.ModNone)
}

func TestKeyControlsHoldWindow(t *testing.T) {
	k := NewKeyControls(100 * time.Millisecond)
	now := time.Unix(1000, 0)

	k.HandleKey(key(tcell.KeyLeft, 0), now)
	if c := k.Controls(now.Add(50 * time.Millisecond)); !c.Left || c.Right {
		t.Errorf("Expected left held, got %+v", c)
	}
	if c := k.Controls(now.Add(150 * time.Millisecond)); c.Left {
		t.Errorf("Expected left released after the hold window, got %+v", c)
	}
}

func TestKeyControlsReverseReleasesOld(t *testing.T) {
	k := NewKeyControls(time.Second)
	now := time.Unix(1000, 0)

	k.HandleKey(key(tcell.KeyRune, 'a'), now)
	k.HandleKey(key(tcell.KeyRune, 'd'), now.Add(10*time.Millisecond))
	c := k.Controls(now.Add(20 * time.Millisecond))
	if c.Left || !c.Right {
		t.Errorf("Expected only right held, got %+v", c)
	}
}

func TestKeyControlsFireOnce(t *testing.T) {
	k := NewKeyControls(DefaultHold)
	now := time.Unix(1000, 0)

	k.HandleKey(key(tcell.KeyRune, ' '), now)
	if !k.Controls(now).Fire {
		t.Errorf("Expected fire")
	}
	if k.Controls(now).Fire {
		t.Errorf("Fire should be consumed")
	}
}

func TestKeyControlsActions(t *testing.T) {
	k := NewKeyControls(DefaultHold)
	now := time.Unix(1000, 0)
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{key(tcell.KeyEscape, 0), ActionQuit},
		{key(tcell.KeyCtrlC, 0), ActionQuit},
		{key(tcell.KeyRune, 'q'), ActionQuit},
		{key(tcell.KeyRune, 'p'), ActionPause},
		{key(tcell.KeyRune, 'c'), ActionCopy},
		{key(tcell.KeyRune, 'x'), ActionNone},
		{key(tcell.KeyRight, 0), ActionNone},
	}
	for _, tc := range cases {
		if got := k.HandleKey(tc.ev, now); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.ev.Name(), got, tc.want)
		}
	}
}
