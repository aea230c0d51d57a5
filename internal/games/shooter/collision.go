package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// resolveCollisions runs the five collision passes in a fixed order.
// Slices are walked back to front so removal never skips an element.
func (g *Game) resolveCollisions() {
	g.playerBullets, g.enemies = g.shootDown(g.playerBullets, g.enemies)
	g.playerBullets, g.meteors = g.shootDown(g.playerBullets, g.meteors)

	hitbox := g.player.Hitbox()
	var hit bool
	if g.enemyBullets, hit = removeFirstHit(g.enemyBullets, hitbox); hit {
		g.hitPlayer()
	}
	if g.enemies, hit = removeFirstHit(g.enemies, hitbox); hit {
		g.hitPlayer()
	}
	if g.meteors, hit = removeFirstHit(g.meteors, hitbox); hit {
		g.hitPlayer()
	}
}

// shootDown removes every bullet that overlaps a target together with the
// first target it overlaps, scoring the target's points.
func (g *Game) shootDown(bullets, targets []Entity) ([]Entity, []Entity) {
	for i := len(bullets) - 1; i >= 0; i-- {
		for j := len(targets) - 1; j >= 0; j-- {
			if !overlaps(&bullets[i], &targets[j]) {
				continue
			}
			points := targets[j].Points
			bullets = remove(bullets, i)
			targets = remove(targets, j)
			g.addScore(points)
			g.audio.Play(core.CueExplosion)
			break
		}
	}
	return bullets, targets
}

func overlaps(a, b Spatial) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// removeFirstHit removes the last-indexed entity overlapping box.
func removeFirstHit(list []Entity, box core.Rect) ([]Entity, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Rect.Intersects(box) {
			return remove(list, i), true
		}
	}
	return list, false
}

// remove deletes list[i] keeping the order of the rest.
func remove(list []Entity, i int) []Entity {
	return append(list[:i], list[i+1:]...)
}

// hitPlayer applies one hit. Losing the last life ends the game on the
// same tick; further hits in that tick are ignored.
func (g *Game) hitPlayer() {
	if g.phase != PhasePlaying {
		return
	}
	g.audio.Play(core.CueHurt)
	if g.player.TakeDamage(g.cfg.Player.CollisionDamage) {
		g.audio.Play(core.CueExplosion)
		g.SetState(PhaseGameOver)
	}
}
