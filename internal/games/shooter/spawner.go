package shooter

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Spawner decides when enemies and meteors enter the field.
// Each population has its own elapsed counter; a spawn needs the counter
// past the interval and the population under its cap. A cap-blocked
// spawn leaves the counter running so it retries on the next tick.
type Spawner struct {
	rng    *rand.Rand
	cfg    *config.ShooterConfig
	logger *log.Logger

	enemyInterval float64 // Shrinks with each difficulty step
	sinceEnemy    float64
	sinceMeteor   float64
	totalWeight   float64
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(seed int64, cfg *config.ShooterConfig, logger *log.Logger) *Spawner {
	s := &Spawner{cfg: cfg, logger: logger}
	s.Reset(seed)
	return s
}

// Reset restores the base interval and rearms both counters so the next
// eligible tick spawns immediately.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.enemyInterval = s.cfg.Enemies.SpawnIntervalMs
	s.sinceEnemy = s.enemyInterval
	s.sinceMeteor = s.cfg.Meteors.SpawnIntervalMs
	s.totalWeight = 0
	for _, m := range s.cfg.Enemies.Mix {
		s.totalWeight += m.Weight
	}
}

// EnemyInterval returns the current enemy spawn interval in milliseconds.
func (s *Spawner) EnemyInterval() float64 {
	return s.enemyInterval
}

// SetEnemyInterval replaces the enemy spawn interval.
func (s *Spawner) SetEnemyInterval(ms float64) {
	s.enemyInterval = ms
}

// Float returns a uniform value in [0, 1) from the spawner's RNG.
func (s *Spawner) Float() float64 {
	return s.rng.Float64()
}

// Uniform returns a uniform value in [lo, hi).
func (s *Spawner) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Update advances both counters and appends at most one enemy and one
// meteor to the given slices.
func (s *Spawner) Update(elapsedMs float64, enemies, meteors []Entity) ([]Entity, []Entity) {
	s.sinceEnemy += elapsedMs
	s.sinceMeteor += elapsedMs

	if s.sinceEnemy > s.enemyInterval && len(enemies) < s.cfg.Limits.MaxEnemies {
		if e, ok := s.enemy(); ok {
			enemies = append(enemies, e)
		}
		s.sinceEnemy = 0
	}

	if s.sinceMeteor > s.cfg.Meteors.SpawnIntervalMs && len(meteors) < s.cfg.Limits.MaxMeteors {
		meteors = append(meteors, s.meteor())
		s.sinceMeteor = 0
	}

	return enemies, meteors
}

// drawKind picks a mix entry by weight.
func (s *Spawner) drawKind() string {
	mix := s.cfg.Enemies.Mix
	if len(mix) == 0 || s.totalWeight <= 0 {
		return ""
	}
	r := s.rng.Float64() * s.totalWeight
	for _, m := range mix {
		if r < m.Weight {
			return m.Kind
		}
		r -= m.Weight
	}
	return mix[len(mix)-1].Kind
}

func (s *Spawner) enemy() (Entity, bool) {
	class := s.drawKind()
	kind, ok := s.cfg.Enemies.Kinds[class]
	if !ok {
		s.logger.Warn("dropping spawn of unknown enemy kind", "kind", class)
		return Entity{}, false
	}
	y := s.Uniform(0, s.cfg.Field.Height-kind.Size)
	return newEnemy(class, kind, s.cfg.Field.Width, y), true
}

func (s *Spawner) meteor() Entity {
	mc := s.cfg.Meteors
	size := s.Uniform(mc.MinSize, mc.MaxSize)
	return Entity{
		Kind:     KindMeteor,
		Rect:     rectAt(s.cfg.Field.Width, s.Uniform(0, s.cfg.Field.Height-size), size),
		Speed:    s.Uniform(mc.MinSpeed, mc.MaxSpeed),
		Points:   mc.Points,
		Rotation: s.Uniform(0, 2*math.Pi),
		Spin:     mc.RotationSpeed,
	}
}

// Stars fills a fresh background with stars scattered across the field.
func (s *Spawner) Stars() []Entity {
	stars := make([]Entity, s.cfg.Stars.Count)
	for i := range stars {
		s.resetStar(&stars[i])
		stars[i].Rect.X = s.Uniform(0, s.cfg.Field.Width)
	}
	return stars
}

// resetStar moves a star back to the right edge with new random traits.
func (s *Spawner) resetStar(star *Entity) {
	sc := s.cfg.Stars
	size := s.Uniform(sc.MinSize, sc.MaxSize)
	star.Kind = KindStar
	star.Rect = rectAt(s.cfg.Field.Width, s.Uniform(0, s.cfg.Field.Height), size)
	star.Speed = s.Uniform(sc.MinSpeed, sc.MaxSpeed)
}
