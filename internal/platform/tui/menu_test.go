package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lab-arcade/internal/core"
	_ "github.com/vovakirdan/lab-arcade/internal/games/rnase"
	_ "github.com/vovakirdan/lab-arcade/internal/games/runner"
	"github.com/vovakirdan/lab-arcade/internal/registry"
)

func newTestMenu() (MenuModel, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := core.DefaultConfig()
	return newMenuModel(cfg, core.NewSecretDetector(registry.Secrets()), clock.now), clock
}

func typeCode(t *testing.T, m MenuModel, code string) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range code {
		var next tea.Model
		next, cmd = m.Update(runeKey(r))
		m = next.(MenuModel)
	}
	return m, cmd
}

func clickTitle(m MenuModel) MenuModel {
	next, _ := m.Update(tea.MouseMsg{
		X:      10,
		Y:      titleTop + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return next.(MenuModel)
}

func TestMenuStartsLocked(t *testing.T) {
	m, _ := newTestMenu()
	if items := m.Items(); len(items) != 0 {
		t.Errorf("expected no unlocked games, got %v", items)
	}
}

func TestMenuCodeGrantsAccess(t *testing.T) {
	m, _ := newTestMenu()

	m, cmd := typeCode(t, m, "xxtcgcat")
	if m.Granting() != "runner" {
		t.Fatalf("Granting() = %q, expected runner", m.Granting())
	}
	if cmd == nil {
		t.Fatal("grant should schedule the end of the flash")
	}
	if m.Selected() != nil {
		t.Fatal("game should not start during the flash")
	}

	next, _ := m.Update(accessDoneMsg{gameID: "runner"})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().GameID != "runner" {
		t.Fatalf("expected runner selected after the flash, got %+v", m.Selected())
	}

	m = m.Reopen(80, 24)
	if m.Selected() != nil || m.Granting() != "" {
		t.Error("Reopen should reset selection")
	}
	if m.detector.Buffer() != "" {
		t.Errorf("Reopen should clear the code buffer, got %q", m.detector.Buffer())
	}
	if items := m.Items(); len(items) != 1 || items[0].GameID != "runner" {
		t.Errorf("unlocked game should stay listed, got %v", items)
	}
}

func TestMenuIgnoresKeysDuringFlash(t *testing.T) {
	m, _ := newTestMenu()
	m, _ = typeCode(t, m, "TCGCAT")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() != nil {
		t.Error("enter during the flash should be ignored")
	}
}

func TestMenuTripleClickUnlocks(t *testing.T) {
	m, clock := newTestMenu()

	for i := 0; i < tapsToUnlock; i++ {
		m = clickTitle(m)
		clock.advance(tapWindow / 2)
	}
	if m.Granting() != tapUnlockGame {
		t.Errorf("Granting() = %q, expected %q", m.Granting(), tapUnlockGame)
	}
}

func TestMenuSlowClicksDoNotUnlock(t *testing.T) {
	m, clock := newTestMenu()

	for i := 0; i < tapsToUnlock; i++ {
		m = clickTitle(m)
		clock.advance(tapWindow + time.Millisecond)
	}
	if m.Granting() != "" {
		t.Errorf("slow clicks should not unlock, granting %q", m.Granting())
	}
}

func TestMenuViewShowsFlash(t *testing.T) {
	m, _ := newTestMenu()
	m, _ = typeCode(t, m, "tcgcat")
	m.width, m.height = 80, 24
	if !strings.Contains(m.View(), "ACCESS GRANTED") {
		t.Error("flash view should say ACCESS GRANTED")
	}
}
