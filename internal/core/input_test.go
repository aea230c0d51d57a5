package core

import "testing"

func TestDirectionsSet(t *testing.T) {
	var d Directions
	if d.Has(DirUp) {
		t.Error("empty set should not contain up")
	}

	d = d.With(DirUp).With(DirRight)
	if !d.Has(DirUp) || !d.Has(DirRight) {
		t.Errorf("set %s should contain up and right", d)
	}
	if d.Has(DirLeft) {
		t.Errorf("set %s should not contain left", d)
	}

	d = d.Without(DirUp)
	if d.Has(DirUp) {
		t.Errorf("set %s should not contain up after removal", d)
	}
	if d.String() != "{right}" {
		t.Errorf("String() = %q, expected {right}", d.String())
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionFire, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := DirectionFor(tc.action)
			if dir != tc.dir || ok != tc.ok {
				t.Errorf("DirectionFor(%s) = (%v, %v), expected (%v, %v)", tc.action, dir, ok, tc.dir, tc.ok)
			}
		})
	}
}

func TestInputPointerTarget(t *testing.T) {
	in := Input{Pointer: &Point{X: 10, Y: 20}}
	if _, ok := in.PointerTarget(); ok {
		t.Error("inactive pointer should not steer")
	}

	in.PointerActive = true
	p, ok := in.PointerTarget()
	if !ok || p.X != 10 || p.Y != 20 {
		t.Errorf("PointerTarget() = (%v, %v), expected ({10 20}, true)", p, ok)
	}

	in.Pointer = nil
	if _, ok := in.PointerTarget(); ok {
		t.Error("active pointer without a target should not steer")
	}
}
