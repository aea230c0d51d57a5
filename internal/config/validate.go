package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// Enemy mix entries naming unknown kinds are not rejected here; the spawner
// drops those draws at runtime and logs them.
func (c ShooterConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	atLeast := func(name string, v, min int) {
		if v < min {
			errs = append(errs, fmt.Errorf("%s must be at least %d, got %d", name, min, v))
		}
	}
	ordered := func(name string, lo, hi float64) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %v exceeds max %v", name, lo, hi))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("field.frame_ms", c.Field.FrameMs)

	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("player.bullet_speed", c.Player.BulletSpeed)
	positive("player.bullet_size", c.Player.BulletSize)
	atLeast("player.lives", c.Player.Lives, 1)
	atLeast("player.collision_damage", c.Player.CollisionDamage, 1)
	if c.Player.ShootDelayMs < 0 {
		errs = append(errs, fmt.Errorf("player.shoot_delay_ms must not be negative, got %v", c.Player.ShootDelayMs))
	}
	if c.Player.HitboxInset < 0 || c.Player.HitboxInset >= 0.5 {
		errs = append(errs, fmt.Errorf("player.hitbox_inset must be in [0, 0.5), got %v", c.Player.HitboxInset))
	}
	if c.Player.Size > c.Field.Width || c.Player.Size > c.Field.Height {
		errs = append(errs, fmt.Errorf("player.size %v does not fit the field", c.Player.Size))
	} else if c.Player.X < 0 || c.Player.X > c.Field.Width-c.Player.Size {
		errs = append(errs, fmt.Errorf("player.x must be in [0, %v], got %v", c.Field.Width-c.Player.Size, c.Player.X))
	}

	if len(c.Enemies.Kinds) == 0 {
		errs = append(errs, errors.New("enemies.kinds must define at least one kind"))
	}
	for name, k := range c.Enemies.Kinds {
		positive("enemies.kinds."+name+".speed", k.Speed)
		positive("enemies.kinds."+name+".size", k.Size)
		if k.Size > c.Field.Height {
			errs = append(errs, fmt.Errorf("enemies.kinds.%s.size %v exceeds field.height %v", name, k.Size, c.Field.Height))
		}
		if k.FireProbability < 0 || k.FireProbability > 1 {
			errs = append(errs, fmt.Errorf("enemies.kinds.%s.fire_probability must be in [0, 1], got %v", name, k.FireProbability))
		}
	}
	if len(c.Enemies.Mix) == 0 {
		errs = append(errs, errors.New("enemies.mix must have at least one entry"))
	}
	for i, m := range c.Enemies.Mix {
		positive(fmt.Sprintf("enemies.mix[%d].weight", i), m.Weight)
	}
	positive("enemies.spawn_interval_ms", c.Enemies.SpawnIntervalMs)
	positive("enemies.bullet_speed", c.Enemies.BulletSpeed)
	positive("enemies.bullet_size", c.Enemies.BulletSize)

	positive("meteors.min_size", c.Meteors.MinSize)
	positive("meteors.min_speed", c.Meteors.MinSpeed)
	positive("meteors.spawn_interval_ms", c.Meteors.SpawnIntervalMs)
	ordered("meteors.size", c.Meteors.MinSize, c.Meteors.MaxSize)
	if c.Meteors.MaxSize > c.Field.Height {
		errs = append(errs, fmt.Errorf("meteors.max_size %v exceeds field.height %v", c.Meteors.MaxSize, c.Field.Height))
	}
	ordered("meteors.speed", c.Meteors.MinSpeed, c.Meteors.MaxSpeed)

	atLeast("stars.count", c.Stars.Count, 0)
	ordered("stars.size", c.Stars.MinSize, c.Stars.MaxSize)
	ordered("stars.speed", c.Stars.MinSpeed, c.Stars.MaxSpeed)

	atLeast("limits.max_enemies", c.Limits.MaxEnemies, 0)
	atLeast("limits.max_player_bullets", c.Limits.MaxPlayerBullets, 0)
	atLeast("limits.max_enemy_bullets", c.Limits.MaxEnemyBullets, 0)
	atLeast("limits.max_meteors", c.Limits.MaxMeteors, 0)

	if c.Difficulty.Enabled {
		atLeast("difficulty.score_threshold", c.Difficulty.ScoreThreshold, 1)
		if c.Difficulty.SpawnRateFactor <= 0 || c.Difficulty.SpawnRateFactor > 1 {
			errs = append(errs, fmt.Errorf("difficulty.spawn_rate_factor must be in (0, 1], got %v", c.Difficulty.SpawnRateFactor))
		}
		if c.Difficulty.SpeedFactor < 1 {
			errs = append(errs, fmt.Errorf("difficulty.speed_factor must be at least 1, got %v", c.Difficulty.SpeedFactor))
		}
	}

	return errors.Join(errs...)
}
