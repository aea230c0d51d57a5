package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Kind tags the variant carried by an Entity.
type Kind uint8

const (
	KindEnemy Kind = iota
	KindPlayerBullet
	KindEnemyBullet
	KindMeteor
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player-bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindMeteor:
		return "meteor"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Spatial is anything with an axis-aligned bounding box on the play field.
type Spatial interface {
	Bounds() core.Rect
}

// Entity is a moving object other than the player.
// Fields that do not apply to a Kind stay zero.
type Entity struct {
	Kind  Kind
	Rect  core.Rect // Position and size in play-field pixels
	Speed float64   // Pixels per reference frame along x

	// Enemy only
	Class           string  // Enemy kind name from the config
	Points          int     // Awarded when destroyed (enemies and meteors)
	FireProbability float64 // Chance to fire per tick

	// Meteor only
	Rotation float64 // Radians, cosmetic, only ever grows
	Spin     float64 // Radians per reference frame
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Rect {
	return e.Rect
}

// Advance moves the entity by one tick scaled by timeScale and reports
// whether it has fully left the play field. Stars never exit; they wrap
// back to the right edge and are re-rolled by the caller.
func (e *Entity) Advance(timeScale, fieldW float64) bool {
	switch e.Kind {
	case KindPlayerBullet:
		e.Rect.X += e.Speed * timeScale
		return e.Rect.X > fieldW
	case KindEnemy, KindEnemyBullet:
		e.Rect.X -= e.Speed * timeScale
		return e.Rect.Right() < 0
	case KindMeteor:
		e.Rect.X -= e.Speed * timeScale
		e.Rotation += e.Spin * timeScale
		return e.Rect.Right() < 0
	case KindStar:
		e.Rect.X -= e.Speed * timeScale
		return e.Rect.Right() < 0
	}
	return false
}

// newEnemy places an enemy of the given class at the right edge.
func newEnemy(class string, k config.EnemyKind, fieldW, y float64) Entity {
	return Entity{
		Kind:            KindEnemy,
		Rect:            core.NewRect(fieldW, y, k.Size, k.Size),
		Speed:           k.Speed,
		Class:           class,
		Points:          k.Points,
		FireProbability: k.FireProbability,
	}
}

// newEnemyBullet spawns a bullet at the enemy's left edge, centred vertically.
func newEnemyBullet(enemy *Entity, size, speed float64) Entity {
	return Entity{
		Kind:  KindEnemyBullet,
		Rect:  core.NewRect(enemy.Rect.X, enemy.Rect.Y+enemy.Rect.H/2-size/2, size, size),
		Speed: speed,
	}
}

func newPlayerBullet(x, y, size, speed float64) Entity {
	return Entity{
		Kind:  KindPlayerBullet,
		Rect:  core.NewRect(x, y, size, size),
		Speed: speed,
	}
}

func rectAt(x, y, size float64) core.Rect {
	return core.NewRect(x, y, size, size)
}
