package core

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow: rotate, menu up
	ActionDown           // S, Down arrow: soft drop, menu down
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionDrop           // Space: hard drop
	ActionConfirm        // Enter
	ActionBack           // B, Escape: back to menu
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
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
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions pressed since the previous Step, in the
// order they arrived. Pressing left twice within one tick moves twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether a was pressed at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of recorded actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear empties the frame, keeping its storage for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone returns a copy that does not share storage with f.
func (f InputFrame) Clone() InputFrame {
	if f.Actions == nil {
		return InputFrame{}
	}
	clone := make([]Action, len(f.Actions))
	copy(clone, f.Actions)
	return InputFrame{Actions: clone}
}
