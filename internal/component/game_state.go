// internal/component/game_state.go
package component

// Score holds the running totals for the current game.
type Score struct {
	Points int
	Kills  int
	Deaths int
}
