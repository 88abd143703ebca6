// internal/termui/keys.go
package termui

import (
	"time"

	"go-invaders/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Action is a non-movement command read from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionCopy
)

// DefaultHold covers the gap between the first key press and the terminal's
// auto-repeat.
const DefaultHold = 150 * time.Millisecond

// KeyControls turns terminal key presses into held controls. Terminals send
// no key-up events, so a direction stays held for the hold window after its
// last press or repeat.
type KeyControls struct {
	hold       time.Duration
	leftUntil  time.Time
	rightUntil time.Time
	fire       bool
}

func NewKeyControls(hold time.Duration) *KeyControls {
	return &KeyControls{hold: hold}
}

// HandleKey records ev and returns any command it carries.
func (k *KeyControls) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		k.press(&k.leftUntil, &k.rightUntil, now)
		return ActionNone
	case tcell.KeyRight:
		k.press(&k.rightUntil, &k.leftUntil, now)
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'a', 'h':
		k.press(&k.leftUntil, &k.rightUntil, now)
	case 'd', 'l':
		k.press(&k.rightUntil, &k.leftUntil, now)
	case ' ':
		k.fire = true
	case 'p':
		return ActionPause
	case 'c':
		return ActionCopy
	case 'q':
		return ActionQuit
	}
	return ActionNone
}

// press holds one direction and releases the other, so reversing does not
// wait for the old hold to lapse.
func (k *KeyControls) press(hold, release *time.Time, now time.Time) {
	*hold = now.Add(k.hold)
	*release = time.Time{}
}

// Controls returns the controls at now. A fire press is returned once.
func (k *KeyControls) Controls(now time.Time) component.Controls {
	c := component.Controls{
		Left:  now.Before(k.leftUntil),
		Right: now.Before(k.rightUntil),
		Fire:  k.fire,
	}
	k.fire = false
	return c
}
