package tui

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases, so the
// window has to bridge the gap between repeats.
const DefaultHoldWindow = 180 * time.Millisecond

var opposite = map[core.Direction]core.Direction{
	core.DirUp:    core.DirDown,
	core.DirDown:  core.DirUp,
	core.DirLeft:  core.DirRight,
	core.DirRight: core.DirLeft,
}

// InputTracker folds key and mouse events into the held-state snapshot
// the game reads at the start of each tick.
type InputTracker struct {
	hold time.Duration

	pressed   map[core.Direction]time.Time // Last press per direction
	fireAt    time.Time                    // Last fire key press
	mouseFire bool                         // Primary button down

	pointer *core.Point
	active  bool
}

// NewInputTracker creates a tracker. A non-positive hold uses DefaultHoldWindow.
func NewInputTracker(hold time.Duration) *InputTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputTracker{
		hold:    hold,
		pressed: make(map[core.Direction]time.Time, 4),
	}
}

// Press records a key press. Movement keys hand steering back to the
// keyboard and release the opposite direction.
func (t *InputTracker) Press(a core.Action, now time.Time) {
	if d, ok := core.DirectionFor(a); ok {
		t.pressed[d] = now
		delete(t.pressed, opposite[d])
		t.active = false
		return
	}
	if a == core.ActionFire {
		t.fireAt = now
	}
}

// PointerMove records the pointer position in field pixels and makes
// pointer steering active.
func (t *InputTracker) PointerMove(p core.Point) {
	t.pointer = &p
	t.active = true
}

// PointerLeave deactivates pointer steering until the pointer moves again.
func (t *InputTracker) PointerLeave() {
	t.active = false
}

// PointerButton records the primary button state.
func (t *InputTracker) PointerButton(down bool) {
	t.mouseFire = down
}

// Clear forgets all held state.
func (t *InputTracker) Clear() {
	clear(t.pressed)
	t.fireAt = time.Time{}
	t.mouseFire = false
	t.pointer = nil
	t.active = false
}

// Snapshot returns the input held at now.
func (t *InputTracker) Snapshot(now time.Time) core.Input {
	in := core.Input{
		FireHeld:      t.mouseFire || t.held(t.fireAt, now),
		PointerActive: t.active,
	}
	for d, at := range t.pressed {
		if t.held(at, now) {
			in.Directions = in.Directions.With(d)
		} else {
			delete(t.pressed, d)
		}
	}
	if t.pointer != nil {
		p := *t.pointer
		in.Pointer = &p
	}
	return in
}

func (t *InputTracker) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) <= t.hold
}
