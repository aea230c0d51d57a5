// Package audio synthesizes the game's sound cues with beep.
// No sound files are loaded; every cue is generated on the fly.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

const sampleRate = beep.SampleRate(44100)

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// Player mixes cues into the speaker. The zero output state is silent:
// until Init succeeds, Play and StopAll only track state.
type Player struct {
	mu     sync.Mutex
	cfg    config.SoundConfig
	logger *log.Logger

	mixer   *beep.Mixer
	music   *beep.Ctrl
	speaker sync.Locker // Guards the mixer while the speaker is pulling from it
	enabled bool        // Cues are mixed
	ready   bool        // Speaker initialized
	muted   bool
	looping bool // Music was asked for and not stopped since
}

// New creates a player that mixes cues once Init has opened the speaker.
func New(cfg config.SoundConfig, logger *log.Logger) *Player {
	return &Player{
		cfg:     cfg,
		logger:  logger,
		mixer:   &beep.Mixer{},
		speaker: nopLocker{},
		enabled: cfg.Enabled,
	}
}

// NewSilent creates a player that never makes a sound. SSH sessions use
// it since the server's speaker is not the player's.
func NewSilent(logger *log.Logger) *Player {
	p := New(config.SoundConfig{}, logger)
	p.enabled = false
	return p
}

// Init opens the speaker. On failure the player stays silent and the
// error is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.enabled = false
		p.logger.Warn("audio unavailable, continuing silently", "err", err)
		return err
	}
	speaker.Play(p.mixer)
	p.speaker = speakerLocker{}
	p.ready = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.StopAll()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
		p.speaker = nopLocker{}
	}
}

// Play starts a cue. Unknown cues are logged and ignored. The music cue
// loops until StopAll; starting it while it plays does nothing. Music
// asked for while muted starts on unmute.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cue == core.CueMusic {
		p.looping = true
	}
	if !p.enabled || p.muted {
		return
	}

	if cue == core.CueMusic {
		p.startMusic()
		return
	}

	s, ok := effect(cue)
	if !ok {
		p.logger.Warn("unknown sound cue", "cue", cue)
		return
	}
	p.add(withVolume(s, p.cfg.EffectsVolume))
}

func (p *Player) startMusic() {
	if p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: withVolume(newMusic(sampleRate), p.cfg.MusicVolume)}
	p.add(p.music)
}

func (p *Player) add(s beep.Streamer) {
	p.speaker.Lock()
	p.mixer.Add(s)
	p.speaker.Unlock()
}

// StopAll silences every playing cue, music included.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.looping = false
	p.silence()
}

func (p *Player) silence() {
	p.speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	p.speaker.Unlock()
}

// ToggleMute flips the mute switch and returns the new state. Muting stops
// whatever is playing; unmuting brings the music back if it is still due.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	switch {
	case p.muted:
		p.silence()
	case p.enabled && p.looping:
		p.startMusic()
	}
	return p.muted
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
