package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	Rect       core.Rect
	Speed      float64
	Lives      int
	BulletRows int     // Parallel shots per volley; follows the difficulty level
	Cooldown   float64 // Milliseconds until the next volley is allowed

	cfg config.PlayerConfig
}

// NewPlayer creates a player at its start position, vertically centred.
func NewPlayer(cfg config.PlayerConfig, fieldH float64) Player {
	return Player{
		Rect:       core.NewRect(cfg.X, fieldH/2-cfg.Size/2, cfg.Size, cfg.Size),
		Speed:      cfg.Speed,
		Lives:      cfg.Lives,
		BulletRows: 1,
		cfg:        cfg,
	}
}

// Bounds returns the drawn box of the ship.
func (p *Player) Bounds() core.Rect {
	return p.Rect
}

// Hitbox returns the box used for incoming hits, smaller than the ship.
func (p *Player) Hitbox() core.Rect {
	return p.Rect.Inset(p.cfg.HitboxInset)
}

// Move applies every held direction, clamping each axis to the field.
func (p *Player) Move(dirs core.Directions, timeScale, fieldW, fieldH float64) {
	step := p.Speed * timeScale
	if dirs.Has(core.DirUp) {
		p.Rect.Y -= step
	}
	if dirs.Has(core.DirDown) {
		p.Rect.Y += step
	}
	if dirs.Has(core.DirLeft) {
		p.Rect.X -= step
	}
	if dirs.Has(core.DirRight) {
		p.Rect.X += step
	}
	p.clamp(fieldW, fieldH)
}

// Glide moves the ship centre toward target by at most Speed*timeScale.
// Within the dead zone the ship does not move at all.
func (p *Player) Glide(target core.Point, timeScale, fieldW, fieldH float64) {
	from := p.Rect.Center()
	dist := core.Distance(from, target)
	if dist <= p.cfg.PointerDeadZone {
		return
	}
	step := min(dist, p.Speed*timeScale)
	ratio := step / dist
	p.Rect.X += (target.X - from.X) * ratio
	p.Rect.Y += (target.Y - from.Y) * ratio
	p.clamp(fieldW, fieldH)
}

func (p *Player) clamp(fieldW, fieldH float64) {
	p.Rect.X = core.ClampF(p.Rect.X, 0, fieldW-p.Rect.W)
	p.Rect.Y = core.ClampF(p.Rect.Y, 0, fieldH-p.Rect.H)
}

// Cool counts the weapon cooldown down by elapsedMs.
func (p *Player) Cool(elapsedMs float64) {
	if p.Cooldown > 0 {
		p.Cooldown -= elapsedMs
	}
}

// CanShoot reports whether the cooldown has run out.
func (p *Player) CanShoot() bool {
	return p.Cooldown <= 0
}

// Shoot returns one bullet per row, fanned around the ship's centre line,
// and restarts the cooldown. It returns nil while cooling down.
func (p *Player) Shoot() []Entity {
	if !p.CanShoot() {
		return nil
	}
	p.Cooldown = p.cfg.ShootDelayMs

	size := p.cfg.BulletSize
	spacing := p.cfg.LaneSpacing
	offset := float64(p.BulletRows-1) * spacing / 2
	bullets := make([]Entity, 0, p.BulletRows)
	for i := range p.BulletRows {
		y := p.Rect.Y + p.Rect.H/2 - size/2 + float64(i)*spacing - offset
		bullets = append(bullets, newPlayerBullet(p.Rect.Right(), y, size, p.cfg.BulletSpeed))
	}
	return bullets
}

// TakeDamage removes lives and reports whether the player is out of them.
func (p *Player) TakeDamage(n int) bool {
	p.Lives -= n
	if p.Lives < 0 {
		p.Lives = 0
	}
	return p.Lives == 0
}
