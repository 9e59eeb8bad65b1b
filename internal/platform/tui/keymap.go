package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap holds the configured bindings as bubbles key.Bindings, so the help
// line always shows what the player actually pressed.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(k config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(k.Up, "up"),
		Down:    binding(k.Down, "down"),
		Left:    binding(k.Left, "left"),
		Right:   binding(k.Right, "right"),
		Restart: binding(k.Restart, "restart"),
		Pause:   binding(k.Pause, "pause"),
		Quit:    binding(k.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = displayKey(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return k
	}
}

// Action translates a key message to a game action.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Up):
		return core.ActionUp
	case key.Matches(msg, km.Down):
		return core.ActionDown
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Restart):
		return core.ActionConfirm
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Pause, km.Restart, km.Quit, km.Help}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Pause, km.Restart, km.Quit, km.Help},
	}
}
