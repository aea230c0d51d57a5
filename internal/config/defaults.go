package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Enemy kind names used by the default configuration.
const (
	KindBasic    = "basic"
	KindAdvanced = "advanced"
)

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file
// cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:   800,
			Height:  400,
			FrameMs: 16.67,
		},
		Player: PlayerConfig{
			X:               50,
			Size:            40,
			Speed:           5,
			Lives:           3,
			ShootDelayMs:    250,
			BulletSpeed:     7,
			BulletSize:      8,
			LaneSpacing:     15,
			HitboxInset:     0.2,
			CollisionDamage: 1,
			PointerDeadZone: 1,
		},
		Enemies: EnemiesConfig{
			Kinds: map[string]EnemyKind{
				KindBasic:    {Speed: 3, Size: 30, Points: 10, FireProbability: 0.01},
				KindAdvanced: {Speed: 4, Size: 40, Points: 20, FireProbability: 0.02},
			},
			Mix: []MixEntry{
				{Kind: KindBasic, Weight: 0.7},
				{Kind: KindAdvanced, Weight: 0.3},
			},
			SpawnIntervalMs: 2000,
			BulletSpeed:     5,
			BulletSize:      6,
		},
		Meteors: MeteorConfig{
			MinSize:         20,
			MaxSize:         50,
			MinSpeed:        2,
			MaxSpeed:        4,
			SpawnIntervalMs: 3000,
			RotationSpeed:   0.02,
			Points:          5,
		},
		Stars: StarConfig{
			Count:    30,
			MinSize:  1,
			MaxSize:  2,
			MinSpeed: 0.5,
			MaxSpeed: 2,
		},
		Limits: LimitsConfig{
			MaxEnemies:       10,
			MaxPlayerBullets: 15,
			MaxEnemyBullets:  20,
			MaxMeteors:       5,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			ScoreThreshold:  100,
			SpawnRateFactor: 0.9,
			SpeedFactor:     1.1,
		},
		Sound: SoundConfig{
			Enabled:       true,
			MusicVolume:   0.3,
			EffectsVolume: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
