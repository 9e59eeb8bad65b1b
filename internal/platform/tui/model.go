package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// chromeRows is the space below the board for the status and help lines.
const chromeRows = 2

// Model is the Bubble Tea model for one snake session.
// Keys pressed while running are queued and applied on the next tick; while
// paused or lost they take effect at once, since nothing else is moving.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tick     time.Duration
	pending  []core.Action
	quitting bool
}

// NewModel sizes the board to fit a width x height terminal and draws the
// first round.
func NewModel(cfg config.Config, width, height int, logger *log.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := core.BoardSize(width, height-chromeRows, cfg.Board.MaxWidth, cfg.Board.MaxHeight)
	session, err := game.NewSession(game.Options{
		Width:         w,
		Height:        h,
		BorderWidth:   cfg.Board.BorderWidth,
		InitialLength: cfg.Game.InitialLength,
		Seed:          cfg.Game.Seed,
		Logger:        logger,
	})
	if err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(w, h)
	session.Reset(screen)

	hm := help.New()
	hm.Width = width

	return Model{
		session: session,
		screen:  screen,
		keys:    NewKeyMap(cfg.Keys),
		help:    hm,
		tick:    cfg.Game.Tick,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board keeps its starting size; only the help line reflows.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionQuit:
		m.session.Step([]core.Action{a}, m.screen)
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionNone:
		return m, nil
	case m.session.State() != game.StateRunning:
		m.session.Step([]core.Action{a}, m.screen)
		m.pending = m.pending[:0]
	default:
		m.pending = append(m.pending, a)
	}
	return m, nil
}

// handleTick advances a running session by one step with the queued keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.State() == game.StateRunning {
		m.session.Step(m.pending, m.screen)
		m.pending = m.pending[:0]
	}
	return m, tickCmd(m.tick)
}

// Session returns the session being played.
func (m Model) Session() *game.Session {
	return m.session
}

// View renders the board, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteByte('\n')
	sb.WriteString(statusStyle.Render(fmt.Sprintf("Score: %d  Length: %d  %s",
		m.session.Score(), m.session.Snake().Len(), m.session.State())))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
