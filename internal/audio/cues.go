package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// effect builds a finite streamer for a one-shot cue.
func effect(cue core.Cue) (beep.Streamer, bool) {
	switch cue {
	case core.CueShoot:
		return beep.Take(sampleRate.N(80*time.Millisecond),
			newTone(sampleRate, square, sweep(900, 300, 0.08), decay(0.08), 0.25)), true
	case core.CueExplosion:
		return beep.Take(sampleRate.N(400*time.Millisecond), newNoise(sampleRate, 0.4, 0.5)), true
	case core.CueHurt:
		return beep.Take(sampleRate.N(200*time.Millisecond),
			newTone(sampleRate, square, sweep(220, 110, 0.2), decay(0.2), 0.3)), true
	case core.CueGameOver:
		return jingle(sampleRate, []float64{523.25, 392.00, 329.63, 261.63}, 220*time.Millisecond), true
	}
	return nil, false
}

// jingle plays the notes one after another.
func jingle(sr beep.SampleRate, notes []float64, each time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	secs := each.Seconds()
	for _, f := range notes {
		parts = append(parts, beep.Take(sr.N(each), newTone(sr, sine, constant(f), decay(secs), 0.35)))
	}
	return beep.Seq(parts...)
}

type waveFunc func(phase float64) float64

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func constant(f float64) func(float64) float64 {
	return func(float64) float64 { return f }
}

// sweep glides linearly from one frequency to another over dur seconds.
func sweep(from, to, dur float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= dur {
			return to
		}
		return from + (to-from)*t/dur
	}
}

// decay fades linearly to zero over dur seconds.
func decay(dur float64) func(float64) float64 {
	return func(t float64) float64 {
		return math.Max(0, 1-t/dur)
	}
}

// tone is an endless oscillator shaped by a frequency and an envelope curve.
type tone struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	amp   float64
	wave  waveFunc
	freq  func(t float64) float64
	env   func(t float64) float64
}

func newTone(sr beep.SampleRate, wave waveFunc, freq, env func(float64) float64, amp float64) *tone {
	return &tone{sr: sr, amp: amp, wave: wave, freq: freq, env: env}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.phase += g.freq(t) / float64(g.sr)
		v := g.amp * g.env(t) * g.wave(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

// noise is decaying white noise for explosions.
type noise struct {
	sr  beep.SampleRate
	pos int
	amp float64
	dur float64
	rng *rand.Rand
}

func newNoise(sr beep.SampleRate, amp, dur float64) *noise {
	return &noise{sr: sr, amp: amp, dur: dur, rng: rand.New(rand.NewSource(1))}
}

func (g *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Max(0, 1-t/g.dur)
		v := g.amp * env * env * (g.rng.Float64()*2 - 1)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *noise) Err() error {
	return nil
}

// music is an endless bass arpeggio.
type music struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	notes []float64
	step  float64 // Seconds per note
}

func newMusic(sr beep.SampleRate) *music {
	return &music{
		sr:    sr,
		notes: []float64{110, 130.81, 164.81, 130.81, 98, 123.47, 146.83, 123.47},
		step:  0.25,
	}
}

func (g *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		idx := int(t/g.step) % len(g.notes)
		within := math.Mod(t, g.step) / g.step
		g.phase += g.notes[idx] / float64(g.sr)
		v := 0.15 * (1 - 0.7*within) * square(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *music) Err() error {
	return nil
}
