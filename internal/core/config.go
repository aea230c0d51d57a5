package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt rendering to the terminal and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the session for the platform layer.
type GameState struct {
	Phase     string // "menu", "playing", "paused" or "gameOver"
	Score     int    // Current score
	HighScore int    // Best score across sessions
	Lives     int    // Remaining player lives
	Level     int    // Difficulty level, starts at 1
	GameOver  bool   // Whether the game has ended
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ran   bool // False when the tick was gated by the state machine
}
