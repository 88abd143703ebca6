// internal/component/input.go
package component

// Controls is the player input for one tick, filled in by the frontend.
type Controls struct {
	Left  bool
	Right bool
	Fire  bool // edge triggered: true only on the tick the key went down
}

// Direction returns -1, 0 or 1 for the horizontal input. Left wins when
// both keys are held.
func (c Controls) Direction() float64 {
	switch {
	case c.Left:
		return -1
	case c.Right:
		return 1
	}
	return 0
}
