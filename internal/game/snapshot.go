package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Snapshot captures the session state for determinism testing and logging.
type Snapshot struct {
	Tick   uint64
	State  State
	Score  int
	Length int
	HeadX  int
	HeadY  int
	Dir    snake.Direction
	Food   []core.Point
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		Tick:   s.tick,
		State:  s.state,
		Score:  s.score,
		Length: s.snake.Len(),
		HeadX:  head.X,
		HeadY:  head.Y,
		Dir:    s.snake.Direction(),
		Food:   s.scene.Food(),
	}
}
