package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left / steer
	ActionRight          // D, Right arrow - move right / steer
	ActionUp             // W, Up arrow - maze up
	ActionDown           // S, Down arrow - maze down
	ActionJump           // Space - primary action (jump, start)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionExit           // Esc - leave the current game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// InputFrame is the player's intent as read at the start of one step.
// It contains every action requested or held since the previous step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as requested for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was requested this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns the horizontal movement intent in [-1, 1].
func (f InputFrame) Axis() float64 {
	axis := 0.0
	if f.Has(ActionLeft) {
		axis--
	}
	if f.Has(ActionRight) {
		axis++
	}
	return axis
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// SwipeTracker turns a pointer drag into a direction, the way a touch screen
// swipe steers the maze game. A drag shorter than the threshold is a tap.
type SwipeTracker struct {
	Threshold float64
	startX    float64
	startY    float64
	tracking  bool
	swiped    bool
}

// NewSwipeTracker creates a tracker with the given minimum swipe distance.
func NewSwipeTracker(threshold float64) *SwipeTracker {
	return &SwipeTracker{Threshold: threshold}
}

// Start records where the pointer went down.
func (s *SwipeTracker) Start(x, y float64) {
	s.startX, s.startY = x, y
	s.tracking = true
	s.swiped = false
}

// Move reports a direction once the pointer has travelled far enough.
// Tracking restarts from the current point after each reported swipe.
func (s *SwipeTracker) Move(x, y float64) (Action, bool) {
	if !s.tracking {
		return ActionNone, false
	}
	dx, dy := x-s.startX, y-s.startY
	if dx*dx+dy*dy < s.Threshold*s.Threshold {
		return ActionNone, false
	}
	s.Start(x, y)
	s.swiped = true
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}

// End stops tracking. It reports true when the gesture was a tap, that is
// it never swiped and ended near where it started.
func (s *SwipeTracker) End(x, y float64) bool {
	if !s.tracking || s.swiped {
		s.tracking = false
		return false
	}
	s.tracking = false
	dx, dy := x-s.startX, y-s.startY
	return dx*dx+dy*dy < s.Threshold*s.Threshold
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
