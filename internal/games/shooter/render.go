package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Surface is a drawing target addressed in play-field pixels.
type Surface interface {
	Clear()
	FillRect(r core.Rect, glyph rune, color core.Color)
	DrawText(at core.Point, text string, color core.Color)
	DrawTextCentered(y float64, text string, color core.Color)
	DrawBox(r core.Rect, color core.Color)
}

// Visual characters for rendering
const (
	StarChar         = '·'
	PlayerChar       = '█'
	BasicEnemyChar   = '▓'
	AdvancedChar     = '▒'
	PlayerBulletChar = '━'
	EnemyBulletChar  = '•'
)

var meteorChars = []rune{'|', '/', '─', '\\'}

// Render draws the whole scene onto dst, or onto the surface given to New
// when dst is nil. It does not change simulation state.
func (g *Game) Render(dst Surface) {
	if dst == nil {
		dst = g.surface
	}
	dst.Clear()

	for i := range g.stars {
		g.drawEntity(dst, &g.stars[i])
	}
	dst.FillRect(g.player.Rect, PlayerChar, core.ColorGreen)
	for _, list := range [][]Entity{g.enemies, g.meteors, g.playerBullets, g.enemyBullets} {
		for i := range list {
			g.drawEntity(dst, &list[i])
		}
	}

	g.drawHUD(dst)
	g.drawOverlay(dst)
}

func (g *Game) drawEntity(dst Surface, e *Entity) {
	switch e.Kind {
	case KindStar:
		dst.FillRect(e.Rect, StarChar, core.ColorDimGray)
	case KindEnemy:
		if e.Class == config.KindAdvanced {
			dst.FillRect(e.Rect, AdvancedChar, core.ColorBrightRed)
		} else {
			dst.FillRect(e.Rect, BasicEnemyChar, core.ColorRed)
		}
	case KindMeteor:
		dst.FillRect(e.Rect, meteorGlyph(e.Rotation), core.ColorOrange)
	case KindPlayerBullet:
		dst.FillRect(e.Rect, PlayerBulletChar, core.ColorBrightGreen)
	case KindEnemyBullet:
		dst.FillRect(e.Rect, EnemyBulletChar, core.ColorYellow)
	}
}

// meteorGlyph picks one of four line glyphs from the rotation angle.
func meteorGlyph(rotation float64) rune {
	r := math.Mod(rotation, math.Pi)
	if r < 0 {
		r += math.Pi
	}
	i := int(r/(math.Pi/4)) % len(meteorChars)
	return meteorChars[i]
}

func (g *Game) drawHUD(dst Surface) {
	st := g.State()
	hud := fmt.Sprintf("Score: %d  High: %d  Lives: %s  Level: %d",
		st.Score, st.HighScore, strings.Repeat("♥", st.Lives), st.Level)
	dst.DrawText(core.Point{}, hud, core.ColorBrightWhite)
}

func (g *Game) drawOverlay(dst Surface) {
	mid := g.cfg.Field.Height / 2
	line := g.cfg.Field.Height / 16
	switch g.phase {
	case PhaseMenu:
		dst.DrawTextCentered(mid-line, "S H O O T E R", core.ColorBrightGreen)
		dst.DrawTextCentered(mid+line, "Press ENTER to start", core.ColorWhite)
		dst.DrawTextCentered(mid+2*line, "Arrows/WASD move, F/Space or mouse fire, M mute", core.ColorGray)
	case PhasePaused:
		g.frame(dst, mid-line, mid+2*line, core.ColorYellow)
		dst.DrawTextCentered(mid, "PAUSED", core.ColorYellow)
		dst.DrawTextCentered(mid+line, "Press P to resume", core.ColorWhite)
	case PhaseGameOver:
		g.frame(dst, mid-2*line, mid+2*line, core.ColorBrightRed)
		dst.DrawTextCentered(mid-line, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", g.scores.Score()), core.ColorWhite)
		dst.DrawTextCentered(mid+line, "Press R for menu, Q to quit", core.ColorWhite)
	}
}

// frame boxes the rows between top and bottom across the middle half of
// the field.
func (g *Game) frame(dst Surface, top, bottom float64, color core.Color) {
	w := g.cfg.Field.Width / 2
	dst.DrawBox(core.NewRect(w/2, top, w, bottom-top), color)
}
