package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// KeyBinding is the result of mapping one key event.
type KeyBinding struct {
	Action core.Action
	Held   bool // set until the key stops repeating, instead of once
	Quit   bool
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyBinding {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyBinding{Action: core.ActionQuit, Quit: true}
	case "a", "left":
		return KeyBinding{Action: core.ActionLeft, Held: true}
	case "d", "right":
		return KeyBinding{Action: core.ActionRight, Held: true}
	case "w", "up":
		return KeyBinding{Action: core.ActionUp}
	case "s", "down":
		return KeyBinding{Action: core.ActionDown}
	case " ":
		return KeyBinding{Action: core.ActionJump}
	case "enter":
		return KeyBinding{Action: core.ActionConfirm}
	case "esc", "b":
		return KeyBinding{Action: core.ActionExit}
	case "p":
		return KeyBinding{Action: core.ActionPause}
	case "r":
		return KeyBinding{Action: core.ActionRestart}
	}
	return KeyBinding{Action: core.ActionNone}
}

// Apply feeds a key event to the host. Returns true on a quit request.
func (km *KeyMapper) Apply(msg tea.KeyMsg, h *TermHost) bool {
	b := km.MapKey(msg)
	switch {
	case b.Quit:
		return true
	case b.Action == core.ActionNone:
	case b.Held:
		h.Hold(b.Action)
	default:
		h.Press(b.Action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Letters are left to
// the code detector, so only arrows and vim keys navigate.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
