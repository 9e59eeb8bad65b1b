package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"j", runeKey('j'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.Default().Keys
	keys.Pause = []string{"x"}
	km := NewKeyMap(keys)

	if got := km.Action(runeKey('x')); got != core.ActionPause {
		t.Errorf("x -> %v, want Pause", got)
	}
	if got := km.Action(runeKey('p')); got != core.ActionNone {
		t.Errorf("p -> %v, want None", got)
	}
}

func TestHelpShowsConfiguredKeys(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	if got := km.Pause.Help().Key; got != "space/p" {
		t.Errorf("pause help = %q, want space/p", got)
	}
	if got := km.Up.Help().Key; !strings.HasPrefix(got, "↑") {
		t.Errorf("up help = %q", got)
	}
	if len(km.FullHelp()) != 2 || len(km.ShortHelp()) == 0 {
		t.Error("help groups missing")
	}
}
