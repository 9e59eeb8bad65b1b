package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// idle marks a tick boundary in a fake script: the non-blocking poll finds
// nothing pending.
const idle core.Action = -1

// fakeTerminal replays a scripted event queue over an in-memory screen.
// An exhausted script answers with one Quit so Run always terminates.
type fakeTerminal struct {
	*core.Screen
	script   []core.Action
	quitSent bool
	flushes  int
	blocking int
	pollErr  error
	flushErr error
}

func newFakeTerminal(w, h int, script ...core.Action) *fakeTerminal {
	return &fakeTerminal{Screen: core.NewScreen(w, h), script: script}
}

func (f *fakeTerminal) PollEvent(ctx context.Context, timeout time.Duration) (core.Action, bool, error) {
	if err := ctx.Err(); err != nil {
		return core.ActionNone, false, err
	}
	if f.pollErr != nil {
		return core.ActionNone, false, f.pollErr
	}

	if timeout == core.Forever {
		f.blocking++
		for len(f.script) > 0 && f.script[0] == idle {
			f.script = f.script[1:]
		}
	}
	if len(f.script) == 0 {
		if f.quitSent && timeout == 0 {
			return core.ActionNone, false, nil
		}
		f.quitSent = true
		return core.ActionQuit, true, nil
	}

	a := f.script[0]
	f.script = f.script[1:]
	if a == idle {
		return core.ActionNone, false, nil
	}
	return a, true, nil
}

func (f *fakeTerminal) Flush() error {
	f.flushes++
	return f.flushErr
}

func (f *fakeTerminal) Size() (int, int) {
	return f.Width(), f.Height()
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Game.Tick = time.Millisecond
	cfg.Game.Seed = 42
	return cfg
}

func TestControllerClampsBoard(t *testing.T) {
	term := newFakeTerminal(200, 60)
	c, err := NewController(term, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	sc := c.Session().Scene()
	if sc.Width() != core.MaxBoardWidth || sc.Height() != core.MaxBoardHeight {
		t.Errorf("board = %dx%d, want %dx%d", sc.Width(), sc.Height(), core.MaxBoardWidth, core.MaxBoardHeight)
	}
}

func TestControllerRejectsTinyTerminal(t *testing.T) {
	_, err := NewController(newFakeTerminal(3, 3), testConfig(), nil)
	var cerr *core.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *core.ConfigError", err)
	}
}

func TestControllerRunMovesAndQuits(t *testing.T) {
	term := newFakeTerminal(20, 20, idle, idle, core.ActionRight, idle, core.ActionQuit)
	c, err := NewController(term, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Two ticks down from (10,10), then one right.
	if got := c.Session().Snake().Head(); got != (core.Point{X: 11, Y: 12}) {
		t.Errorf("head = %v, want (11,12)", got)
	}
	// Initial draw plus one flush per completed tick.
	if term.flushes != 4 {
		t.Errorf("flushes = %d, want 4", term.flushes)
	}
}

func TestControllerBlocksWhilePaused(t *testing.T) {
	term := newFakeTerminal(20, 20,
		core.ActionPause, idle,
		idle, core.ActionUp, idle, // ignored while paused
		core.ActionPause, idle,
		idle,
		core.ActionQuit,
	)
	c, err := NewController(term, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if term.blocking != 2 {
		t.Errorf("blocking polls = %d, want 2", term.blocking)
	}
	// Resuming does not move; the two idle ticks after it do.
	if got := c.Session().Snake().Head(); got != (core.Point{X: 10, Y: 12}) {
		t.Errorf("head = %v, want (10,12)", got)
	}
}

func TestControllerRestartAfterLoss(t *testing.T) {
	cfg := testConfig()
	term := newFakeTerminal(10, 10)
	for range 5 {
		term.script = append(term.script, idle)
	}
	term.script = append(term.script, core.ActionLeft, core.ActionConfirm, idle, core.ActionQuit)

	c, err := NewController(term, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Session().State() != StateRunning {
		t.Errorf("state = %v, want running after restart", c.Session().State())
	}
	if snap := c.Session().Snapshot(); snap.Tick != 1 {
		t.Errorf("tick = %d, want 1 move since restart", snap.Tick)
	}
}

func TestControllerTerminalErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("poll", func(t *testing.T) {
		term := newFakeTerminal(20, 20)
		term.pollErr = boom
		c, err := NewController(term, testConfig(), nil)
		if err != nil {
			t.Fatal(err)
		}

		err = c.Run(context.Background())
		var ioErr *core.IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "poll" || !errors.Is(err, boom) {
			t.Fatalf("error = %v, want poll *core.IOError wrapping boom", err)
		}
	})

	t.Run("flush", func(t *testing.T) {
		term := newFakeTerminal(20, 20)
		term.flushErr = boom
		c, err := NewController(term, testConfig(), nil)
		if err != nil {
			t.Fatal(err)
		}

		var ioErr *core.IOError
		if err := c.Run(context.Background()); !errors.As(err, &ioErr) || ioErr.Op != "flush" {
			t.Fatalf("error = %v, want flush *core.IOError", err)
		}
	})
}

func TestControllerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewController(newFakeTerminal(20, 20, idle, idle), testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
