// Package term implements game.Terminal on top of tcell: raw mode, the
// alternate screen, a hidden cursor and an event pump feeding the loop.
package term

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var errClosed = errors.New("event stream closed")

// Terminal owns a tcell screen for one session.
type Terminal struct {
	screen tcell.Screen
	keys   core.KeyMap
	styles styleSet

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

var _ game.Terminal = (*Terminal)(nil)

// Open initializes the controlling terminal. Close must be called to restore it.
func Open(keys core.KeyMap) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &core.IOError{Op: "open", Err: err}
	}
	return newWithScreen(screen, keys)
}

func newWithScreen(screen tcell.Screen, keys core.KeyMap) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, &core.IOError{Op: "init", Err: err}
	}
	if keys == nil {
		keys = core.DefaultKeyMap()
	}

	styles := newStyleSet()
	screen.SetStyle(styles.base)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		keys:   keys,
		styles: styles,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
// tcell's PollEvent only blocks, so it runs on its own goroutine.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// PollEvent returns the next key action. Resize and mouse events are consumed
// silently; unbound keys come back as core.ActionNone.
func (t *Terminal) PollEvent(ctx context.Context, timeout time.Duration) (core.Action, bool, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		var (
			ev tcell.Event
			ok bool
		)

		if timeout == 0 {
			select {
			case ev, ok = <-t.events:
			default:
				return core.ActionNone, false, nil
			}
		} else {
			select {
			case ev, ok = <-t.events:
			case <-ctx.Done():
				return core.ActionNone, false, ctx.Err()
			case <-expired:
				return core.ActionNone, false, nil
			}
		}

		if !ok {
			return core.ActionNone, false, &core.IOError{Op: "poll", Err: errClosed}
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			return t.keys.Lookup(keyName(ev)), true, nil
		case *tcell.EventResize:
			// The board keeps the size it started with.
			t.screen.Sync()
		}
	}
}

// Flush shows the buffered cells.
func (t *Terminal) Flush() error {
	select {
	case <-t.done:
		return &core.IOError{Op: "flush", Err: errClosed}
	default:
	}
	t.screen.Show()
	return nil
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// SetCell draws a glyph with its default rune and color.
func (t *Terminal) SetCell(x, y int, g core.Glyph) {
	t.screen.SetContent(x, y, g.Rune(), nil, t.styles.glyph(g))
}

// ClearCell blanks one cell.
func (t *Terminal) ClearCell(x, y int) {
	t.screen.SetContent(x, y, ' ', nil, t.styles.base)
}

// DrawText writes text starting at (x, y), one rune per cell.
func (t *Terminal) DrawText(x, y int, text string) {
	style := t.styles.glyph(core.GlyphText)
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Clear blanks the whole screen.
func (t *Terminal) Clear() {
	t.screen.Clear()
}
