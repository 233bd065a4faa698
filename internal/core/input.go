package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionWest           // Left, A - move one step west
	ActionEast           // Right, D - move one step east
	ActionNorth          // Up, W - move one step north
	ActionSouth          // Down, S - move one step south
	ActionReveal         // V - show the hidden marker (one-way)
	ActionHome           // H - re-center the player marker
	ActionReset          // R - start a fresh round at the same tier
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionWest:
		return "West"
	case ActionEast:
		return "East"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionReveal:
		return "Reveal"
	case ActionHome:
		return "Home"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directional moves.
func (a Action) IsMove() bool {
	return a >= ActionWest && a <= ActionSouth
}

// InputFrame represents the input state during one simulation tick.
// An action present in the frame is treated as held for the whole tick,
// so pressing the same key several times within one tick counts once.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
