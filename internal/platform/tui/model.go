package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/scores"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Sounder is the audio a session drives: the game's cues plus the mute key.
type Sounder interface {
	shooter.Audio
	ToggleMute() bool
}

// Options configure one game session.
type Options struct {
	Config     config.ShooterConfig
	Difficulty string // Preset name recorded with each finished game
	Seed       int64  // 0 seeds from the clock
	TickRate   int
	Width      int
	Height     int
	Store      *storage.Store // Required unless Ephemeral is set
	Ephemeral  bool           // Keep scores in memory when Store is nil
	Audio      Sounder        // nil plays nothing
	Logger     *log.Logger    // nil discards
}

// Model is the Bubble Tea model for one shooter session.
type Model struct {
	game     *shooter.Game
	surface  *CellSurface
	input    *InputTracker
	keys     *KeyMapper
	clock    *frameClock
	sound    Sounder
	recorder *runRecorder
	logger   *log.Logger
	tickRate int
	state    core.GameState
	quitting bool
}

// NewModel builds the game and everything it talks to.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = audio.NewSilent(opts.Logger)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	var hs scores.HighScoreStore
	switch {
	case opts.Store != nil:
		hs = opts.Store
	case opts.Ephemeral:
		hs = scores.NewMemoryStore()
	}
	keeper, err := scores.NewKeeper(hs, storage.DefaultHighScoreKey, opts.Logger)
	if err != nil {
		return Model{}, err
	}

	surface := NewCellSurface(core.NewScreen(opts.Width, opts.Height), opts.Config.Field.Width, opts.Config.Field.Height)
	recorder := &runRecorder{store: opts.Store, difficulty: opts.Difficulty, logger: opts.Logger}

	game, err := shooter.New(opts.Config, opts.Seed, shooter.Deps{
		Surface:       surface,
		Scores:        keeper,
		Audio:         opts.Audio,
		Logger:        opts.Logger,
		OnStateChange: recorder.onStateChange,
	})
	if err != nil {
		return Model{}, err
	}
	recorder.game = game

	return Model{
		game:     game,
		surface:  surface,
		input:    NewInputTracker(DefaultHoldWindow),
		keys:     NewKeyMapper(),
		clock:    &frameClock{},
		sound:    opts.Audio,
		recorder: recorder,
		logger:   opts.Logger,
		tickRate: opts.TickRate,
		state:    game.State(),
	}, nil
}

// Game returns the session's game.
func (m Model) Game() *shooter.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		// The field keeps its pixel size; only the cell mapping changes
		m.surface.Screen().Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		m.input.Press(action, now)
	case core.ActionConfirm:
		m.game.Start()
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionRestart:
		if m.state.GameOver || m.state.Paused {
			m.game.SetSeed(now.UnixNano())
			m.game.Restart()
			m.input.Clear()
		}
	case core.ActionMute:
		muted := m.sound.ToggleMute()
		m.logger.Info("sound toggled", "muted", muted)
	}
	m.state = m.game.State()
	return m, nil
}

// handleMouse steers with the pointer and fires with the primary button.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if !m.surface.Contains(msg.X, msg.Y) {
		m.input.PointerLeave()
		m.input.PointerButton(false)
		return
	}
	m.input.PointerMove(m.surface.Point(msg.X, msg.Y))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.PointerButton(true)
		}
	case tea.MouseActionRelease:
		m.input.PointerButton(false)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.Elapsed(now, m.tickRate)
	result := m.game.Step(m.input.Snapshot(now), elapsed)
	if result.Ran {
		m.recorder.playMs += elapsed
	}
	m.state = result.State

	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(nil)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("shooter_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.surface.Screen().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(nil)
	return RenderScreen(m.surface.Screen())
}

// runRecorder writes one history row per finished game.
type runRecorder struct {
	store      *storage.Store
	difficulty string
	logger     *log.Logger
	game       *shooter.Game
	playMs     float64
}

func (r *runRecorder) onStateChange(from, to shooter.Phase) {
	switch {
	case from == shooter.PhaseMenu && to == shooter.PhasePlaying:
		r.playMs = 0
	case to == shooter.PhaseGameOver:
		r.save()
	}
}

func (r *runRecorder) save() {
	st := r.game.State()
	if r.store == nil || st.Score <= 0 {
		return
	}
	rec := storage.GameRecord{
		Difficulty: r.difficulty,
		Score:      st.Score,
		Level:      st.Level,
		Duration:   time.Duration(r.playMs * float64(time.Millisecond)),
	}
	if _, err := r.store.SaveGame(rec); err != nil {
		r.logger.Warn("cannot save game", "err", err)
		return
	}
	r.logger.Info("game saved", "score", rec.Score, "level", rec.Level, "duration", rec.Duration, "ticks", r.game.Ticks())
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover steering needs motion without a button
	)

	_, err = p.Run()
	return err
}
