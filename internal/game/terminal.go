package game

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Terminal is the I/O surface the controller owns for the whole session.
// Draw calls are buffered until Flush.
type Terminal interface {
	core.Canvas

	// PollEvent returns the next input action. A zero timeout never blocks and
	// reports ok=false when nothing is pending; core.Forever blocks until an
	// event arrives or ctx is done.
	PollEvent(ctx context.Context, timeout time.Duration) (a core.Action, ok bool, err error)

	// Flush writes buffered draw calls to the device.
	Flush() error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)
}
