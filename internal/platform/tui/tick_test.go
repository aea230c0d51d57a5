package tui

import (
	"math"
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	var c frameClock

	if ms := c.Elapsed(t0, 60); math.Abs(ms-1000.0/60) > 1e-9 {
		t.Errorf("first frame = %v ms, want the nominal %v", ms, 1000.0/60)
	}
	if ms := c.Elapsed(t0.Add(20*time.Millisecond), 60); ms != 20 {
		t.Errorf("second frame = %v ms, want 20", ms)
	}
	if ms := c.Elapsed(t0.Add(520*time.Millisecond), 60); ms != 500 {
		t.Errorf("stalled frame = %v ms, want 500", ms)
	}
}
