// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all tunable parameters of the simulation.
// Distances are play-field pixels, speeds are pixels per reference frame
// and durations are milliseconds.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Meteors    MeteorConfig     `yaml:"meteors"`
	Stars      StarConfig       `yaml:"stars"`
	Limits     LimitsConfig     `yaml:"limits"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sound      SoundConfig      `yaml:"sound"`
}

// FieldConfig defines the play field and the reference frame duration.
type FieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	FrameMs float64 `yaml:"frame_ms"` // Elapsed time that maps to timeScale 1
}

// PlayerConfig defines the player ship and its weapon.
type PlayerConfig struct {
	X               float64 `yaml:"x"` // Start position; y is centered vertically
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	Lives           int     `yaml:"lives"`
	ShootDelayMs    float64 `yaml:"shoot_delay_ms"`
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletSize      float64 `yaml:"bullet_size"`
	LaneSpacing     float64 `yaml:"lane_spacing"` // Vertical gap between parallel shots
	HitboxInset     float64 `yaml:"hitbox_inset"` // Fraction trimmed from each side
	CollisionDamage int     `yaml:"collision_damage"`
	PointerDeadZone float64 `yaml:"pointer_dead_zone"` // Glide stops within this distance
}

// EnemiesConfig defines enemy kinds, the spawn mix and enemy fire.
type EnemiesConfig struct {
	Kinds           map[string]EnemyKind `yaml:"kinds"`
	Mix             []MixEntry           `yaml:"mix"`
	SpawnIntervalMs float64              `yaml:"spawn_interval_ms"`
	BulletSpeed     float64              `yaml:"bullet_speed"`
	BulletSize      float64              `yaml:"bullet_size"`
}

// EnemyKind fixes the speed, size, point value and fire rate of an enemy.
type EnemyKind struct {
	Speed           float64 `yaml:"speed"`
	Size            float64 `yaml:"size"`
	Points          int     `yaml:"points"`
	FireProbability float64 `yaml:"fire_probability"` // Chance to fire per tick
}

// MixEntry is one weighted option of the enemy spawn draw.
type MixEntry struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}

// MeteorConfig defines meteor ranges and cadence.
type MeteorConfig struct {
	MinSize         float64 `yaml:"min_size"`
	MaxSize         float64 `yaml:"max_size"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	RotationSpeed   float64 `yaml:"rotation_speed"` // Radians per reference frame
	Points          int     `yaml:"points"`
}

// StarConfig defines the decorative background.
type StarConfig struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// LimitsConfig caps every moving-entity collection.
type LimitsConfig struct {
	MaxEnemies       int `yaml:"max_enemies"`
	MaxPlayerBullets int `yaml:"max_player_bullets"`
	MaxEnemyBullets  int `yaml:"max_enemy_bullets"`
	MaxMeteors       int `yaml:"max_meteors"`
}

// DifficultyConfig defines the score-driven difficulty steps.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	ScoreThreshold  int     `yaml:"score_threshold"`   // Points per level
	SpawnRateFactor float64 `yaml:"spawn_rate_factor"` // Applied to the enemy interval per step (< 1)
	SpeedFactor     float64 `yaml:"speed_factor"`      // Applied to live enemies per step (> 1)
}

// SoundConfig defines audio levels.
type SoundConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
