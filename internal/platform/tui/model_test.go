package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/scores"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

type fakeSounder struct {
	played  []core.Cue
	toggles int
}

func (f *fakeSounder) Play(cue core.Cue) { f.played = append(f.played, cue) }
func (f *fakeSounder) StopAll()          {}
func (f *fakeSounder) ToggleMute() bool {
	f.toggles++
	return f.toggles%2 == 1
}

func newTestModel(t *testing.T, sound Sounder) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:    config.DefaultShooterConfig(),
		Seed:      7,
		Width:     80,
		Height:    24,
		Audio:     sound,
		Ephemeral: true,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, nil)
	if m.state.Phase != string(shooter.PhaseMenu) {
		t.Errorf("expected menu, got %q", m.state.Phase)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Player.Lives = 0
	if _, err := NewModel(Options{Config: cfg, Ephemeral: true}); err == nil {
		t.Error("expected an error for zero lives")
	}
}

func TestNewModelRequiresStore(t *testing.T) {
	_, err := NewModel(Options{Config: config.DefaultShooterConfig(), Seed: 1})
	if !errors.Is(err, scores.ErrNoStore) {
		t.Errorf("expected ErrNoStore without a store, got %v", err)
	}
}

func TestTicksOnlyRunWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, TickMsg(t0))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if n := m.Game().Ticks(); n != 0 {
		t.Errorf("menu ticked %d times", n)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.Phase != string(shooter.PhasePlaying) {
		t.Fatalf("enter should start the game, got %q", m.state.Phase)
	}
	m, _ = send(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	m, _ = send(t, m, TickMsg(t0.Add(32*time.Millisecond)))
	if n := m.Game().Ticks(); n != 2 {
		t.Errorf("expected 2 ticks, got %d", n)
	}
}

func TestPauseAndRestartKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Restart is ignored while playing
	m, _ = send(t, m, runeKey('r'))
	if m.state.Phase != string(shooter.PhasePlaying) {
		t.Fatalf("restart while playing should be ignored, got %q", m.state.Phase)
	}

	m, _ = send(t, m, runeKey('p'))
	if !m.state.Paused {
		t.Fatalf("p should pause, got %q", m.state.Phase)
	}
	m, _ = send(t, m, runeKey('r'))
	if m.state.Phase != string(shooter.PhaseMenu) {
		t.Errorf("r while paused should return to the menu, got %q", m.state.Phase)
	}
}

func TestMuteKeyTogglesSound(t *testing.T) {
	sound := &fakeSounder{}
	m := newTestModel(t, sound)

	m, _ = send(t, m, runeKey('m'))
	send(t, m, runeKey('m'))
	if sound.toggles != 2 {
		t.Errorf("expected 2 toggles, got %d", sound.toggles)
	}
}

func TestStartPlaysMusic(t *testing.T) {
	sound := &fakeSounder{}
	m := newTestModel(t, sound)
	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(sound.played) == 0 || sound.played[0] != core.CueMusic {
		t.Errorf("expected music on start, got %v", sound.played)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if v := m.View(); v != "" {
		t.Errorf("view after quit should be empty, got %d bytes", len(v))
	}
}

func TestMouseSteering(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionMotion})
	in := m.input.Snapshot(t0)
	p, ok := in.PointerTarget()
	if !ok {
		t.Fatal("pointer should be active after motion")
	}
	if p.X != 405 {
		t.Errorf("pointer x = %v, want 405", p.X)
	}

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.input.Snapshot(t0).FireHeld {
		t.Error("left press should fire")
	}
	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease})
	if m.input.Snapshot(t0).FireHeld {
		t.Error("release should stop firing")
	}

	m, _ = send(t, m, tea.MouseMsg{X: 200, Y: 12, Action: tea.MouseActionMotion})
	if m.input.Snapshot(t0).PointerActive {
		t.Error("pointer off screen should deactivate steering")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg(t0))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if w, h := m.surface.Screen().Width(), m.surface.Screen().Height(); w != 120 || h != 40 {
		t.Errorf("screen = %dx%d, want 120x40", w, h)
	}
	if m.Game().Ticks() != 1 || m.state.Phase != string(shooter.PhasePlaying) {
		t.Error("resize should not reset the game")
	}
}

func TestViewDrawsMenu(t *testing.T) {
	m := newTestModel(t, nil)
	if m.View() == "" {
		t.Fatal("empty view")
	}
	if !strings.Contains(m.surface.Screen().String(), "S H O O T E R") {
		t.Error("menu title missing from screen")
	}
}

// fixedScores reports a constant score so the recorder has something to save.
type fixedScores struct{ score int }

func (f *fixedScores) Add(int) int { return f.score }
func (f *fixedScores) Score() int  { return f.score }
func (f *fixedScores) Reset()      {}
func (f *fixedScores) High() int   { return f.score }

func TestRecorderSavesFinishedGameOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	rec := &runRecorder{store: store, difficulty: "hard", logger: log.New(io.Discard)}
	game, err := shooter.New(config.DefaultShooterConfig(), 1, shooter.Deps{
		Surface:       testSurface(),
		Scores:        &fixedScores{score: 120},
		OnStateChange: rec.onStateChange,
	})
	if err != nil {
		t.Fatalf("shooter.New() failed: %v", err)
	}
	rec.game = game

	rec.playMs = 99999 // Left over from an earlier run
	game.Start()
	rec.playMs += 1500
	game.SetState(shooter.PhaseGameOver)
	game.Restart()

	games, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 saved game, got %d", len(games))
	}
	g := games[0]
	if g.Score != 120 || g.Level != 1 || g.Difficulty != "hard" || g.Duration != 1500*time.Millisecond {
		t.Errorf("unexpected record %+v", g)
	}
}

func TestRecorderSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	rec := &runRecorder{store: store, logger: log.New(io.Discard)}
	game, err := shooter.New(config.DefaultShooterConfig(), 1, shooter.Deps{
		Surface:       testSurface(),
		Scores:        &fixedScores{},
		OnStateChange: rec.onStateChange,
	})
	if err != nil {
		t.Fatalf("shooter.New() failed: %v", err)
	}
	rec.game = game
	game.Start()
	game.SetState(shooter.PhaseGameOver)

	if games, _ := store.TopGames(10); len(games) != 0 {
		t.Errorf("zero score should not be saved, got %d rows", len(games))
	}
}
