package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionAddBall        // Space - drop a new random ball into the pit
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the simulation
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAddBall:
		return "AddBall"
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

// Pointer carries the mouse state for one simulation tick.
// Coordinates are screen cells; games translate them to world space.
// At most one of Press, Motion, Release is set per frame.
type Pointer struct {
	X, Y    int
	Press   bool // left button went down at (X, Y)
	Motion  bool // cursor moved to (X, Y) while the button was held
	Release bool // left button came up at (X, Y)
}

// Any returns true if the pointer produced an event this frame.
func (p Pointer) Any() bool {
	return p.Press || p.Motion || p.Release
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the mouse state for this frame.
	Pointer Pointer

	// EjectSlot is the 1-based inventory slot requested for ejection,
	// or 0 when no eject was requested this frame.
	EjectSlot int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions, pointer state, and eject requests for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
	f.EjectSlot = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.EjectSlot = f.EjectSlot
	return clone
}
