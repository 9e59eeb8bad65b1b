package game

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Controller drives a Session over a Terminal at a fixed tick.
type Controller struct {
	term    Terminal
	session *Session
	tick    time.Duration
	logger  *log.Logger
}

// NewController sizes the board from the terminal, clamped to the configured
// maximum, and builds the session. Invalid settings yield a *core.ConfigError.
func NewController(t Terminal, cfg config.Config, logger *log.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tw, th := t.Size()
	w, h := core.BoardSize(tw, th, cfg.Board.MaxWidth, cfg.Board.MaxHeight)

	session, err := NewSession(Options{
		Width:         w,
		Height:        h,
		BorderWidth:   cfg.Board.BorderWidth,
		InitialLength: cfg.Game.InitialLength,
		Seed:          cfg.Game.Seed,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("board ready", "terminal", [2]int{tw, th}, "board", [2]int{w, h}, "tick", cfg.Game.Tick)

	return &Controller{
		term:    t,
		session: session,
		tick:    cfg.Game.Tick,
		logger:  logger,
	}, nil
}

// Session returns the session being driven.
func (c *Controller) Session() *Session {
	return c.session
}

// Run plays until the player quits (nil), ctx is done (ctx.Err()) or the
// terminal fails (*core.IOError).
func (c *Controller) Run(ctx context.Context) error {
	c.session.Reset(c.term)
	if err := c.flush(); err != nil {
		return err
	}

	var events []core.Action
	for {
		running := c.session.State() == StateRunning

		var err error
		if running {
			events, err = c.drain(ctx, events[:0])
		} else {
			events, err = c.wait(ctx, events[:0])
		}
		if err != nil {
			return err
		}

		if c.session.Step(events, c.term) == SignalQuit {
			return nil
		}
		if err := c.flush(); err != nil {
			return err
		}

		// Only movement ticks are paced; paused and lost states block on input.
		if running && c.session.State() == StateRunning {
			if err := sleep(ctx, c.tick); err != nil {
				return err
			}
		}
	}
}

// drain collects every pending event without blocking.
func (c *Controller) drain(ctx context.Context, events []core.Action) ([]core.Action, error) {
	for {
		a, ok, err := c.term.PollEvent(ctx, 0)
		if err != nil {
			return events, c.wrap("poll", err)
		}
		if !ok {
			return events, nil
		}
		events = append(events, a)
	}
}

// wait blocks for a single event.
func (c *Controller) wait(ctx context.Context, events []core.Action) ([]core.Action, error) {
	a, ok, err := c.term.PollEvent(ctx, core.Forever)
	if err != nil {
		return events, c.wrap("poll", err)
	}
	if ok {
		events = append(events, a)
	}
	return events, nil
}

func (c *Controller) flush() error {
	if err := c.term.Flush(); err != nil {
		return c.wrap("flush", err)
	}
	return nil
}

// wrap passes context errors through and types everything else as a terminal failure.
func (c *Controller) wrap(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var ioErr *core.IOError
	if errors.As(err, &ioErr) {
		return err
	}
	c.logger.Error("terminal failure", "op", op, "err", err)
	return &core.IOError{Op: op, Err: err}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
