package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry name of the Bubble Tea front-end.
const ID = "tea"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays in a Bubble Tea program on the alternate screen.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Bubble Tea program with key help" }

// Run sizes the board from stdout and runs the program until the player quits.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	width, height := core.MaxBoardWidth, core.MaxBoardHeight+chromeRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	model, err := NewModel(opts.Config, width, height, opts.Logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return &core.IOError{Op: "run", Err: err}
	}
	return nil
}
