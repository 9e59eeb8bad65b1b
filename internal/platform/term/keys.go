package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyName converts a tcell key event to the key names used by core.KeyMap.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		return string(r)
	default:
		return ev.Name()
	}
}
