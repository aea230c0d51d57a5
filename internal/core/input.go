package core

import "strings"

// Action represents a semantic command, abstracted from physical key presses.
// Commands are one-shot: they fire once per key press, unlike held directions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // F, Space
	ActionConfirm        // Enter - start from the menu
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - back to the menu with a fresh game
	ActionMute           // M key - toggle sound
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is one of the four discrete movement directions.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Directions is the set of directions held during a tick.
type Directions uint8

// Has reports whether d is in the set.
func (s Directions) Has(d Direction) bool {
	return s&Directions(d) != 0
}

// With returns the set with d added.
func (s Directions) With(d Direction) Directions {
	return s | Directions(d)
}

// Without returns the set with d removed.
func (s Directions) Without(d Direction) Directions {
	return s &^ Directions(d)
}

func (s Directions) String() string {
	var parts []string
	for _, d := range []struct {
		dir  Direction
		name string
	}{{DirUp, "up"}, {DirDown, "down"}, {DirLeft, "left"}, {DirRight, "right"}} {
		if s.Has(d.dir) {
			parts = append(parts, d.name)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// DirectionFor maps a movement action to its direction.
func DirectionFor(a Action) (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Input is the normalized input snapshot consumed by one simulation tick.
// It reflects the state at tick start; later events land in the next tick.
type Input struct {
	Directions Directions // Union of directions currently held
	FireHeld   bool       // Fire key or primary pointer button held

	// Pointer is the target point in play-field pixels, nil when unknown.
	Pointer *Point

	// PointerActive is true while the pointer has been used since it last
	// left the play surface. It makes pointer steering win over keys.
	PointerActive bool
}

// PointerTarget returns the pointer target and whether pointer steering applies.
func (in Input) PointerTarget() (Point, bool) {
	if !in.PointerActive || in.Pointer == nil {
		return Point{}, false
	}
	return *in.Pointer, true
}
