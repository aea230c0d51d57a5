package shooter

// applyDifficulty raises the level when the score crosses a threshold.
// A step shortens the enemy interval once, speeds up every live enemy and
// widens the player's volley to one row per level.
func (g *Game) applyDifficulty() {
	level := g.difficulty.Level(g.scores.Score())
	if level <= g.level {
		return
	}

	interval := g.difficulty.SpawnInterval(g.spawner.EnemyInterval())
	g.spawner.SetEnemyInterval(interval)
	for i := range g.enemies {
		g.enemies[i].Speed = g.difficulty.Speed(g.enemies[i].Speed)
	}
	g.player.BulletRows = level

	g.logger.Info("difficulty step", "from", g.level, "to", level, "enemy_interval_ms", interval)
	g.level = level
}

// Level returns the current difficulty level.
func (g *Game) Level() int {
	return g.level
}
