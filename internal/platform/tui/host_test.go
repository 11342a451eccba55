package tui

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHost(store BestStore) (*TermHost, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newTermHost(store, log.New(io.Discard), clock.now), clock
}

type memStore struct {
	best map[string]int
	err  error
}

func (s *memStore) BestScore(key string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.best[key], nil
}

func (s *memStore) SaveBestScore(key string, score int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if score <= s.best[key] {
		return false, nil
	}
	s.best[key] = score
	return true, nil
}

func TestTermHostHoldExpires(t *testing.T) {
	h, clock := newTestHost(nil)

	h.Hold(core.ActionLeft)
	clock.advance(DefaultHoldWindow / 2)
	if !h.Intent().Has(core.ActionLeft) {
		t.Fatal("held action should be set inside the window")
	}

	clock.advance(DefaultHoldWindow)
	if h.Intent().Has(core.ActionLeft) {
		t.Error("held action should expire without a repeat")
	}
}

func TestTermHostHoldRepeatExtends(t *testing.T) {
	h, clock := newTestHost(nil)

	for i := 0; i < 5; i++ {
		h.Hold(core.ActionRight)
		clock.advance(DefaultHoldWindow - time.Millisecond)
	}
	if !h.Intent().Has(core.ActionRight) {
		t.Error("key repeats should keep the action held")
	}
}

func TestTermHostOppositeHold(t *testing.T) {
	h, _ := newTestHost(nil)

	h.Hold(core.ActionLeft)
	h.Hold(core.ActionRight)
	in := h.Intent()
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("holding right should release left, got axis %v", in.Axis())
	}
}

func TestTermHostPressIsOneShot(t *testing.T) {
	h, _ := newTestHost(nil)

	h.Press(core.ActionJump)
	if !h.Intent().Has(core.ActionJump) {
		t.Fatal("pressed action should be reported once")
	}
	if h.Intent().Has(core.ActionJump) {
		t.Error("pressed action should be cleared after Intent")
	}
}

func TestTermHostReleaseAll(t *testing.T) {
	h, _ := newTestHost(nil)

	h.Hold(core.ActionLeft)
	h.ReleaseAll()
	if h.Intent().Has(core.ActionLeft) {
		t.Error("ReleaseAll should drop held actions")
	}
}

func TestTermHostTimers(t *testing.T) {
	h, clock := newTestHost(nil)

	fired := 0
	h.After(time.Second, func() { fired++ })
	cancelled := h.After(time.Second, func() { fired += 10 })
	cancelled.Cancel()

	clock.advance(999 * time.Millisecond)
	h.Fire()
	if fired != 0 {
		t.Fatalf("timer fired early: %d", fired)
	}

	clock.advance(time.Millisecond)
	h.Fire()
	if fired != 1 {
		t.Errorf("expected one timer to fire, got %d", fired)
	}
}

func TestTermHostPointer(t *testing.T) {
	tests := []struct {
		name     string
		moveX    int
		moveY    int
		expected core.Action
	}{
		{"tap", 0, 0, core.ActionJump},
		{"swipe right", 6, 0, core.ActionRight},
		{"swipe left", -6, 0, core.ActionLeft},
		{"swipe down", 0, 3, core.ActionDown},
		{"swipe up", 0, -3, core.ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestHost(nil)
			h.Pointer(PointerDown, 10, 10)
			h.Pointer(PointerMove, 10+tc.moveX, 10+tc.moveY)
			h.Pointer(PointerUp, 10+tc.moveX, 10+tc.moveY)

			in := h.Intent()
			if !in.Has(tc.expected) {
				t.Errorf("expected %v in intent", tc.expected)
			}
			if tc.expected != core.ActionJump && in.Has(core.ActionJump) {
				t.Error("a swipe should not also jump")
			}
		})
	}
}

func TestTermHostBestScoreStore(t *testing.T) {
	store := &memStore{best: map[string]int{"k": 10}}
	h, _ := newTestHost(store)

	if got := h.BestScore("k"); got != 10 {
		t.Fatalf("BestScore() = %d, expected 10", got)
	}
	if h.SaveBestScore("k", 5) {
		t.Error("lower score should not be a new best")
	}
	if !h.SaveBestScore("k", 15) {
		t.Error("higher score should be a new best")
	}
	if store.best["k"] != 15 {
		t.Errorf("store best = %d, expected 15", store.best["k"])
	}
}

func TestTermHostBestScoreFallback(t *testing.T) {
	tests := []struct {
		name  string
		store BestStore
	}{
		{"no store", nil},
		{"failing store", &memStore{err: errors.New("disk full")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestHost(tc.store)
			if !h.SaveBestScore("k", 7) {
				t.Fatal("first positive score should be a new best")
			}
			if h.SaveBestScore("k", 7) {
				t.Error("equal score should not be a new best")
			}
			if got := h.BestScore("k"); got != 7 {
				t.Errorf("BestScore() = %d, expected 7", got)
			}
		})
	}
}
