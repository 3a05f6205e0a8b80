package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key codes into actions; anything they do not
// recognize is simply never set.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump / wall jump, held for a higher jump
	ActionLeft           // Left arrow, A - accelerate left
	ActionRight          // Right arrow, D - accelerate right
	ActionUp             // Menu navigation
	ActionDown           // Menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - start a new run
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the key-state snapshot for one simulation tick.
// An action present in the map is held for the whole tick; absent means not held.
// Games derive press/release edges by comparing consecutive frames.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
