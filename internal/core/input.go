package core

// Action represents a semantic input event, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota // Any key without a binding; ignored by the game
	ActionUp                    // Turn up
	ActionDown                  // Turn down
	ActionLeft                  // Turn left
	ActionRight                 // Turn right
	ActionConfirm               // Restart after a loss
	ActionPause                 // Pause and resume
	ActionQuit                  // Leave the game from any state
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
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action turns the snake.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// KeyMap translates key names to actions. Key names follow Bubble Tea's
// KeyMsg.String() form ("up", "enter", "esc", "ctrl+c", " ", "w").
type KeyMap map[string]Action

// Bind adds bindings for every key name to the action.
func (m KeyMap) Bind(a Action, keys ...string) {
	for _, k := range keys {
		m[k] = a
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (m KeyMap) Lookup(key string) Action {
	if m == nil {
		return ActionNone
	}
	return m[key]
}

// DefaultKeyMap returns the bindings used when no configuration overrides them.
func DefaultKeyMap() KeyMap {
	m := make(KeyMap)
	m.Bind(ActionUp, "up", "w", "k")
	m.Bind(ActionDown, "down", "s", "j")
	m.Bind(ActionLeft, "left", "a", "h")
	m.Bind(ActionRight, "right", "d", "l")
	m.Bind(ActionConfirm, "enter")
	m.Bind(ActionPause, " ", "p")
	m.Bind(ActionQuit, "esc", "q", "ctrl+c")
	return m
}
