// Package scene owns the board: its bounds, the food on it, and how the
// board and the snake are drawn onto a core.Canvas.
//
// A Scene never owns the snake; every query receives it by reference.
package scene

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Scene holds the board dimensions, the border thickness and the food set.
type Scene struct {
	width       int
	height      int
	borderWidth int
	rng         *rand.Rand

	food   []core.Point
	onFood map[core.Point]bool
}

// New validates the board geometry and creates an empty scene.
// rng drives food placement; nil means a time-seeded source.
func New(width, height, borderWidth int, rng *rand.Rand) (*Scene, error) {
	if width <= 0 {
		return nil, &core.ConfigError{Field: "width", Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &core.ConfigError{Field: "height", Reason: "must be positive"}
	}
	if borderWidth < 1 {
		return nil, &core.ConfigError{Field: "border_width", Reason: "must be at least 1"}
	}
	// Playable cells satisfy bw < x < width-bw, so at least one column and row
	// must remain between the bands.
	if width-2*borderWidth < 2 || height-2*borderWidth < 2 {
		return nil, &core.ConfigError{Field: "border_width", Reason: "leaves no playable interior"}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Scene{
		width:       width,
		height:      height,
		borderWidth: borderWidth,
		rng:         rng,
		onFood:      make(map[core.Point]bool),
	}, nil
}

// Width returns the board width in cells.
func (sc *Scene) Width() int {
	return sc.width
}

// Height returns the board height in cells.
func (sc *Scene) Height() int {
	return sc.height
}

// BorderWidth returns the border band thickness.
func (sc *Scene) BorderWidth() int {
	return sc.borderWidth
}

// Interior returns the cells a head may occupy without being out of bounds.
func (sc *Scene) Interior() core.Rect {
	bw := sc.borderWidth
	return core.NewRect(bw+1, bw+1, sc.width-2*bw-1, sc.height-2*bw-1)
}

// Reset removes all food.
func (sc *Scene) Reset() {
	sc.food = sc.food[:0]
	clear(sc.onFood)
}

// IsOutOfBounds reports whether the head has entered or crossed the border band.
func (sc *Scene) IsOutOfBounds(s *snake.Snake) bool {
	head := s.Head()
	bw := sc.borderWidth
	return head.X <= bw || head.X >= sc.width-bw ||
		head.Y <= bw || head.Y >= sc.height-bw
}

// IsSelfCollision reports whether two segments share a cell.
func (sc *Scene) IsSelfCollision(s *snake.Snake) bool {
	body := s.Body()
	seen := make(map[core.Point]struct{}, len(body))
	for _, seg := range body {
		if _, dup := seen[seg]; dup {
			return true
		}
		seen[seg] = struct{}{}
	}
	return false
}
