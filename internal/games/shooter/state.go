package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Phase is a state of the game state machine.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "gameOver"
)

// transitions lists the phases reachable from each phase.
var transitions = map[Phase][]Phase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhasePaused, PhaseGameOver, PhaseMenu},
	PhasePaused:   {PhasePlaying, PhaseMenu},
	PhaseGameOver: {PhaseMenu},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// SetState moves the state machine to next and runs the side effects of
// entering it. An illegal transition changes nothing and returns false.
func (g *Game) SetState(next Phase) bool {
	prev := g.phase
	if !CanTransition(prev, next) {
		g.logger.Debug("ignored state change", "from", prev, "to", next)
		return false
	}
	g.phase = next
	g.logger.Debug("state change", "from", prev, "to", next)

	switch next {
	case PhasePlaying:
		g.rebase = true
		g.audio.Play(core.CueMusic)
	case PhasePaused:
		g.audio.StopAll()
	case PhaseGameOver:
		g.audio.StopAll()
		g.audio.Play(core.CueGameOver)
	case PhaseMenu:
		g.reset()
		g.audio.StopAll()
	}

	if g.onStateChange != nil {
		g.onStateChange(prev, next)
	}
	return true
}

// Start leaves the menu and begins play.
func (g *Game) Start() bool {
	return g.SetState(PhasePlaying)
}

// Pause freezes the simulation.
func (g *Game) Pause() bool {
	return g.SetState(PhasePaused)
}

// Resume continues a paused game. The first tick after resuming runs with
// a single reference frame rather than the time spent paused.
func (g *Game) Resume() bool {
	if g.phase != PhasePaused {
		return false
	}
	return g.SetState(PhasePlaying)
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhasePlaying:
		return g.Pause()
	case PhasePaused:
		return g.Resume()
	}
	return false
}

// Restart abandons the current game and returns to the menu with a fresh
// player, empty collections and the base difficulty.
func (g *Game) Restart() bool {
	return g.SetState(PhaseMenu)
}
