// Package shooter implements a side-scrolling arcade shooter.
// The player's ship holds the left side of the field while enemies and
// meteors stream in from the right. Destroying them scores points, and the
// score drives the difficulty level.
package shooter

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Collaborator errors returned by New.
var (
	ErrNoSurface     = errors.New("shooter: no render surface")
	ErrNoScoreKeeper = errors.New("shooter: no score keeper")
)

// ScoreKeeper tracks the running score and the best score across sessions.
type ScoreKeeper interface {
	Add(points int) int
	Score() int
	Reset()
	High() int
}

// Audio plays sound cues.
type Audio interface {
	Play(cue core.Cue)
	StopAll()
}

type silentAudio struct{}

func (silentAudio) Play(core.Cue) {}
func (silentAudio) StopAll()      {}

// Deps are the collaborators a Game talks to. Surface and Scores are
// required; a nil Audio plays nothing and a nil Logger discards.
type Deps struct {
	Surface Surface
	Scores  ScoreKeeper
	Audio   Audio
	Logger  *log.Logger

	// OnStateChange is called after every accepted transition.
	OnStateChange func(from, to Phase)
}

// Game is one shooter session. It is not safe for concurrent use; a
// driver calls Step (or Tick) and Render from a single goroutine.
type Game struct {
	cfg        config.ShooterConfig
	seed       int64
	difficulty *config.DifficultyManager
	spawner    *Spawner

	player        Player
	enemies       []Entity
	playerBullets []Entity
	enemyBullets  []Entity
	meteors       []Entity
	stars         []Entity

	phase  Phase
	level  int
	ticks  int
	rebase bool // Next tick uses one reference frame instead of elapsed time
	input  core.Input

	surface       Surface
	scores        ScoreKeeper
	audio         Audio
	logger        *log.Logger
	onStateChange func(from, to Phase)
}

// New creates a game in the menu phase.
func New(cfg config.ShooterConfig, seed int64, deps Deps) (*Game, error) {
	if deps.Surface == nil {
		return nil, ErrNoSurface
	}
	if deps.Scores == nil {
		return nil, ErrNoScoreKeeper
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: invalid config: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		seed:          seed,
		difficulty:    config.NewDifficultyManager(cfg.Difficulty),
		phase:         PhaseMenu,
		surface:       deps.Surface,
		scores:        deps.Scores,
		audio:         deps.Audio,
		logger:        deps.Logger,
		onStateChange: deps.OnStateChange,
	}
	if g.audio == nil {
		g.audio = silentAudio{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.spawner = NewSpawner(seed, &g.cfg, g.logger)
	g.reset()
	return g, nil
}

// SetSeed changes the seed used by the next restart.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// reset puts every piece of simulation state back to its initial value.
func (g *Game) reset() {
	g.player = NewPlayer(g.cfg.Player, g.cfg.Field.Height)
	g.enemies = g.enemies[:0]
	g.playerBullets = g.playerBullets[:0]
	g.enemyBullets = g.enemyBullets[:0]
	g.meteors = g.meteors[:0]
	g.spawner.Reset(g.seed)
	g.stars = g.spawner.Stars()
	g.level = 1
	g.ticks = 0
	g.rebase = false
	g.input = core.Input{}
	g.scores.Reset()
}

// Step records the input snapshot and runs one tick.
func (g *Game) Step(in core.Input, elapsedMs float64) core.StepResult {
	g.input = in
	ran := g.phase == PhasePlaying
	g.Tick(elapsedMs)
	return core.StepResult{State: g.State(), Ran: ran}
}

// Tick advances the simulation by elapsedMs. It does nothing unless the
// game is playing.
func (g *Game) Tick(elapsedMs float64) {
	if g.phase != PhasePlaying {
		return
	}
	if g.rebase {
		elapsedMs = g.cfg.Field.FrameMs
		g.rebase = false
	}
	if elapsedMs < 0 || math.IsNaN(elapsedMs) {
		elapsedMs = 0
	}
	ts := elapsedMs / g.cfg.Field.FrameMs
	fieldW, fieldH := g.cfg.Field.Width, g.cfg.Field.Height

	g.ticks++

	if target, ok := g.input.PointerTarget(); ok {
		g.player.Glide(target, ts, fieldW, fieldH)
	} else {
		g.player.Move(g.input.Directions, ts, fieldW, fieldH)
	}

	g.player.Cool(elapsedMs)
	if g.input.FireHeld {
		g.fire()
	}

	for i := range g.stars {
		if g.advance(&g.stars[i], ts) {
			g.spawner.resetStar(&g.stars[i])
		}
	}

	g.enemies, g.meteors = g.spawner.Update(elapsedMs, g.enemies, g.meteors)

	for i := len(g.enemies) - 1; i >= 0; i-- {
		if g.advance(&g.enemies[i], ts) {
			g.enemies = remove(g.enemies, i)
			continue
		}
		if len(g.enemyBullets) < g.cfg.Limits.MaxEnemyBullets &&
			g.spawner.Float() < g.enemies[i].FireProbability {
			b := newEnemyBullet(&g.enemies[i], g.cfg.Enemies.BulletSize, g.cfg.Enemies.BulletSpeed)
			g.enemyBullets = append(g.enemyBullets, b)
		}
	}
	g.meteors = g.advanceAll(g.meteors, ts)
	g.playerBullets = g.advanceAll(g.playerBullets, ts)
	g.enemyBullets = g.advanceAll(g.enemyBullets, ts)

	g.resolveCollisions()
	g.applyDifficulty()
}

// fire adds a volley, dropping the shots that do not fit under the cap.
func (g *Game) fire() {
	volley := g.player.Shoot()
	if volley == nil {
		return
	}
	g.audio.Play(core.CueShoot)
	free := g.cfg.Limits.MaxPlayerBullets - len(g.playerBullets)
	if free <= 0 {
		return
	}
	if len(volley) > free {
		volley = volley[:free]
	}
	g.playerBullets = append(g.playerBullets, volley...)
}

// advanceAll moves every entity and drops the ones that left the field.
func (g *Game) advanceAll(list []Entity, ts float64) []Entity {
	for i := len(list) - 1; i >= 0; i-- {
		if g.advance(&list[i], ts) {
			list = remove(list, i)
		}
	}
	return list
}

// advance moves one entity and reports whether it must be culled. A panic
// or a broken box culls the entity instead of ending the tick.
func (g *Game) advance(e *Entity, ts float64) (cull bool) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("entity update panicked", "kind", e.Kind, "panic", r)
			cull = true
		}
	}()
	if e.Advance(ts, g.cfg.Field.Width) {
		return true
	}
	if !e.Rect.Valid() {
		g.logger.Error("culling entity with invalid bounds", "kind", e.Kind, "rect", e.Rect)
		return true
	}
	return false
}

func (g *Game) addScore(points int) {
	g.scores.Add(points)
}

// State returns a summary for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     string(g.phase),
		Score:     g.scores.Score(),
		HighScore: g.scores.High(),
		Lives:     g.player.Lives,
		Level:     g.level,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
	}
}

// Ticks returns the number of ticks simulated since the last reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []Entity { return g.enemies }

// PlayerBullets returns the live player bullets.
func (g *Game) PlayerBullets() []Entity { return g.playerBullets }

// EnemyBullets returns the live enemy bullets.
func (g *Game) EnemyBullets() []Entity { return g.enemyBullets }

// Meteors returns the live meteors.
func (g *Game) Meteors() []Entity { return g.meteors }

// Stars returns the background stars.
func (g *Game) Stars() []Entity { return g.stars }
