package state

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
	err  error
}

func (s *recordingState) Enter() { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Exit()  { *s.log = append(*s.log, s.name+".exit") }
func (s *recordingState) Update(deltaTime float64) error {
	*s.log = append(*s.log, s.name+".update")
	return s.err
}
func (s *recordingState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm := NewStateMachine()
	if err := sm.Update(0.1); err != nil {
		t.Fatalf("Empty machine should not fail: %v", err)
	}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.Update(0.1)

	want := []string{"a.enter", "a.update", "a.exit", "b.enter", "b.update"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if sm.Current() != b {
		t.Errorf("Expected b to be current")
	}
}

func TestStateMachinePassesTermination(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(&recordingState{name: "q", log: &log, err: ebiten.Termination})
	if err := sm.Update(0.1); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}
