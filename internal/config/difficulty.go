package config

// DifficultyManager turns cumulative score into a difficulty level and
// scales spawn cadence and enemy speed per level step.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ScoreThreshold > 0
}

// Level returns floor(score / threshold) + 1, or 1 when progression is off.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score < 0 {
		return 1
	}
	return score/d.cfg.ScoreThreshold + 1
}

// SpawnInterval returns the enemy spawn interval after one level step.
func (d *DifficultyManager) SpawnInterval(intervalMs float64) float64 {
	return intervalMs * d.cfg.SpawnRateFactor
}

// Speed returns an enemy speed after one level step.
func (d *DifficultyManager) Speed(speed float64) float64 {
	return speed * d.cfg.SpeedFactor
}
