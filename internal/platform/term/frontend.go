package term

import (
	"context"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry name of the tcell front-end.
const ID = "tcell"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays with the blocking game.Controller loop on a tcell screen.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "tcell terminal, fixed-tick loop" }

// Run opens the terminal, plays one session and restores the terminal on
// every exit path, panics included.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	t, err := Open(opts.Config.Keys.KeyMap())
	if err != nil {
		return err
	}
	defer t.Close()

	c, err := game.NewController(t, opts.Config, opts.Logger)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}
