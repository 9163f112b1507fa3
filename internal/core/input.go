package core

// Action represents a semantic game action, abstracted from physical key presses.
// Movement is split into start/stop pairs so frontends with real key-up
// events and terminals without them feed the game the same way.
type Action int

const (
	ActionNone       Action = iota
	ActionLeftStart         // Left arrow pressed
	ActionLeftStop          // Left arrow released
	ActionRightStart        // Right arrow pressed
	ActionRightStop         // Right arrow released
	ActionFire              // Space
	ActionRestart           // Enter / Start Battle - start or restart after game over
	ActionPause             // P - pause/unpause game
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftStart:
		return "LeftStart"
	case ActionLeftStop:
		return "LeftStop"
	case ActionRightStart:
		return "RightStart"
	case ActionRightStop:
		return "RightStop"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected for one simulation tick.
// Actions are kept in arrival order; for movement the last event per
// direction wins.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
