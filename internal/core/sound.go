package core

// Cue names a sound the game asks the audio layer to play.
type Cue string

const (
	CueShoot     Cue = "shoot"
	CueExplosion Cue = "explosion"
	CueHurt      Cue = "hurt"
	CueGameOver  Cue = "gameOver"
	CueMusic     Cue = "music" // Looping background track while playing
)
