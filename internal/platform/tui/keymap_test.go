package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		held   bool
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true, false},
		{"d", runeKey('d'), core.ActionRight, true, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionExit, false, false},
		{"r", runeKey('r'), core.ActionRestart, false, false},
		{"q", runeKey('q'), core.ActionQuit, false, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false, true},
		{"unbound", runeKey('z'), core.ActionNone, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := km.MapKey(tc.msg)
			if b.Action != tc.action || b.Held != tc.held || b.Quit != tc.quit {
				t.Errorf("MapKey() = %+v, expected action %v held %v quit %v", b, tc.action, tc.held, tc.quit)
			}
		})
	}
}

func TestApply(t *testing.T) {
	km := NewKeyMapper()
	h, _ := newTestHost(nil)

	if km.Apply(runeKey('a'), h) {
		t.Fatal("a should not quit")
	}
	km.Apply(runeKey('r'), h)
	in := h.Intent()
	if !in.Has(core.ActionLeft) || !in.Has(core.ActionRestart) {
		t.Error("held and pressed actions should both reach the host")
	}
	if !km.Apply(runeKey('q'), h) {
		t.Error("q should request quit")
	}
}

func TestMapKeyToMenuActionLeavesLetters(t *testing.T) {
	km := NewKeyMapper()
	for _, r := range "TCGCATADAPTRNASEtcgcat" {
		if a := km.MapKeyToMenuAction(runeKey(r)); a != MenuActionNone {
			t.Errorf("letter %q mapped to menu action %v", r, a)
		}
	}
	if km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}) != MenuActionScoreboard {
		t.Error("tab should open the scoreboard")
	}
}
