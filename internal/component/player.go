// internal/component/player.go
package component

// Player marks the player's ship.
type Player struct{}

// PlayerState survives the player entity and drives respawning.
type PlayerState struct {
	On       bool    // a player entity is alive
	LastShot float64 // game time of the last death, -1 if never
}

// NewPlayerState returns the state before the first spawn.
func NewPlayerState() *PlayerState {
	return &PlayerState{On: false, LastShot: -1}
}

// Spawned records that a player entity was created.
func (s *PlayerState) Spawned() {
	s.On = true
	s.LastShot = -1
}

// Shot records the player's death at game time now.
func (s *PlayerState) Shot(now float64) {
	s.On = false
	s.LastShot = now
}
