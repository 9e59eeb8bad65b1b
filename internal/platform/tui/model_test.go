package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T, w, h int) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 11
	m, err := NewModel(cfg, w, h, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestNewModelReservesChrome(t *testing.T) {
	m := newTestModel(t, 40, 22)

	sc := m.Session().Scene()
	if sc.Width() != 40 || sc.Height() != 20 {
		t.Errorf("board = %dx%d, want 40x20", sc.Width(), sc.Height())
	}
}

func TestNewModelRejectsTinyTerminal(t *testing.T) {
	_, err := NewModel(config.Default(), 3, 4, nil)
	var cerr *core.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *core.ConfigError", err)
	}
}

func TestKeysQueuedUntilTick(t *testing.T) {
	m := newTestModel(t, 40, 22)
	head := m.Session().Snake().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Session().Snake().Head() != head {
		t.Fatal("snake moved before the tick")
	}

	m = tick(t, m)
	if m.Session().Snake().Direction() != snake.DirRight {
		t.Errorf("direction = %v, want right", m.Session().Snake().Direction())
	}
	if got := m.Session().Snake().Head(); got != (core.Point{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, want one cell right of %v", got, head)
	}
}

func TestPauseFreezesTicks(t *testing.T) {
	m := newTestModel(t, 40, 22)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	if m.Session().State() != game.StatePaused {
		t.Fatalf("state = %v, want paused", m.Session().State())
	}

	head := m.Session().Snake().Head()
	m = tick(t, m)
	if m.Session().Snake().Head() != head {
		t.Error("snake moved while paused")
	}

	// Resume applies at once; nothing else moves while paused.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Session().State() != game.StateRunning {
		t.Errorf("state = %v, want running", m.Session().State())
	}
}

func TestQuitReturnsTeaQuit(t *testing.T) {
	m := newTestModel(t, 40, 22)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestViewShowsBoardAndStatus(t *testing.T) {
	m := newTestModel(t, 40, 22)
	view := m.View()

	if !strings.Contains(view, "#") || !strings.Contains(view, "O") {
		t.Error("board glyphs missing from view")
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("status line missing from view")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetCell(0, 0, core.GlyphBorder)
	s.SetCell(2, 1, core.GlyphFood)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "#") || !strings.Contains(lines[1], "*") {
		t.Errorf("unexpected render %q", out)
	}
}
