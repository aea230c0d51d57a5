package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestHeldDirectionExpires(t *testing.T) {
	tr := NewInputTracker(180 * time.Millisecond)
	tr.Press(core.ActionUp, t0)

	if in := tr.Snapshot(t0.Add(100 * time.Millisecond)); !in.Directions.Has(core.DirUp) {
		t.Errorf("up should be held inside the window, got %v", in.Directions)
	}
	if in := tr.Snapshot(t0.Add(200 * time.Millisecond)); in.Directions != 0 {
		t.Errorf("up should be released after the window, got %v", in.Directions)
	}
}

func TestRepeatKeepsDirectionHeld(t *testing.T) {
	tr := NewInputTracker(180 * time.Millisecond)
	for i := range 10 {
		tr.Press(core.ActionRight, t0.Add(time.Duration(i)*50*time.Millisecond))
	}
	if in := tr.Snapshot(t0.Add(600 * time.Millisecond)); !in.Directions.Has(core.DirRight) {
		t.Errorf("auto-repeat should keep right held, got %v", in.Directions)
	}
}

func TestCombinedDirections(t *testing.T) {
	tr := NewInputTracker(0)
	tr.Press(core.ActionUp, t0)
	tr.Press(core.ActionRight, t0)

	in := tr.Snapshot(t0)
	if !in.Directions.Has(core.DirUp) || !in.Directions.Has(core.DirRight) {
		t.Errorf("expected up+right, got %v", in.Directions)
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	tr := NewInputTracker(0)
	tr.Press(core.ActionLeft, t0)
	tr.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	in := tr.Snapshot(t0.Add(20 * time.Millisecond))
	if in.Directions.Has(core.DirLeft) || !in.Directions.Has(core.DirRight) {
		t.Errorf("expected right only, got %v", in.Directions)
	}
}

func TestFireKeyAndButton(t *testing.T) {
	tr := NewInputTracker(180 * time.Millisecond)

	tr.Press(core.ActionFire, t0)
	if !tr.Snapshot(t0.Add(50 * time.Millisecond)).FireHeld {
		t.Error("fire key should be held inside the window")
	}
	if tr.Snapshot(t0.Add(time.Second)).FireHeld {
		t.Error("fire key should expire")
	}

	tr.PointerButton(true)
	if !tr.Snapshot(t0.Add(time.Hour)).FireHeld {
		t.Error("mouse button should fire until released")
	}
	tr.PointerButton(false)
	if tr.Snapshot(t0.Add(time.Hour)).FireHeld {
		t.Error("released button should stop firing")
	}
}

func TestPointerActivation(t *testing.T) {
	tr := NewInputTracker(0)

	if _, ok := tr.Snapshot(t0).PointerTarget(); ok {
		t.Fatal("pointer should start inactive")
	}

	tr.PointerMove(core.Point{X: 300, Y: 120})
	in := tr.Snapshot(t0)
	if p, ok := in.PointerTarget(); !ok || p.X != 300 || p.Y != 120 {
		t.Errorf("PointerTarget() = %v, %v; want (300,120), true", p, ok)
	}

	tr.Press(core.ActionDown, t0)
	in = tr.Snapshot(t0)
	if in.PointerActive {
		t.Error("a movement key should hand steering back to the keyboard")
	}
	if in.Pointer == nil {
		t.Error("the last pointer position should be kept")
	}

	tr.PointerMove(core.Point{X: 10, Y: 10})
	tr.PointerLeave()
	if tr.Snapshot(t0).PointerActive {
		t.Error("leaving the screen should deactivate the pointer")
	}
}

func TestSnapshotCopiesPointer(t *testing.T) {
	tr := NewInputTracker(0)
	tr.PointerMove(core.Point{X: 1, Y: 2})

	in := tr.Snapshot(t0)
	in.Pointer.X = 99
	if again := tr.Snapshot(t0); again.Pointer.X != 1 {
		t.Errorf("snapshot aliases tracker state: X = %v", again.Pointer.X)
	}
}

func TestClearForgetsEverything(t *testing.T) {
	tr := NewInputTracker(0)
	tr.Press(core.ActionUp, t0)
	tr.Press(core.ActionFire, t0)
	tr.PointerMove(core.Point{X: 5, Y: 5})
	tr.PointerButton(true)

	tr.Clear()
	in := tr.Snapshot(t0)
	if in.Directions != 0 || in.FireHeld || in.PointerActive || in.Pointer != nil {
		t.Errorf("expected empty input after Clear, got %+v", in)
	}
}
