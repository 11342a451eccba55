package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"jump only", []Action{ActionJump}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InputOf(tc.actions...).Axis(); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClone(t *testing.T) {
	f := InputOf(ActionJump)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) {
		t.Error("clone should keep its actions after the original is cleared")
	}
	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected Action
	}{
		{"right", 30, 5, ActionRight},
		{"left", -30, 5, ActionLeft},
		{"down", 3, 25, ActionDown},
		{"up", -3, -25, ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwipeTracker(20)
			s.Start(100, 100)
			got, ok := s.Move(100+tc.dx, 100+tc.dy)
			if !ok || got != tc.expected {
				t.Errorf("Move() = %v, %v, expected %v", got, ok, tc.expected)
			}
		})
	}

	s := NewSwipeTracker(20)
	s.Start(0, 0)
	if _, ok := s.Move(5, 5); ok {
		t.Error("short drag should not report a swipe")
	}
	if !s.End(5, 5) {
		t.Error("short gesture should count as a tap")
	}

	s.Start(0, 0)
	if _, ok := s.Move(30, 0); !ok {
		t.Fatal("long drag should report a swipe")
	}
	if s.End(31, 0) {
		t.Error("releasing after a swipe is not a tap")
	}
}
