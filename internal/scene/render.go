package scene

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// RenderBorder clears the canvas and draws the border band.
func (sc *Scene) RenderBorder(dst core.Canvas) {
	dst.Clear()

	bw := sc.borderWidth
	for y := 0; y < sc.height; y++ {
		for x := 0; x < sc.width; x++ {
			if x < bw || x >= sc.width-bw || y < bw || y >= sc.height-bw {
				dst.SetCell(x, y, core.GlyphBorder)
			}
		}
	}
}

// RenderSnake draws the head and body segments.
func (sc *Scene) RenderSnake(dst core.Canvas, s *snake.Snake) {
	for i, seg := range s.Body() {
		if i == 0 {
			continue
		}
		dst.SetCell(seg.X, seg.Y, core.GlyphSnakeBody)
	}
	// Head last so it stays visible when it overlaps the body.
	head := s.Head()
	dst.SetCell(head.X, head.Y, core.GlyphSnakeHead)
}

// RenderFood draws every food item.
func (sc *Scene) RenderFood(dst core.Canvas) {
	for _, p := range sc.food {
		dst.SetCell(p.X, p.Y, core.GlyphFood)
	}
}

// ClearSnakeCells erases every cell the snake occupies.
func (sc *Scene) ClearSnakeCells(dst core.Canvas, s *snake.Snake) {
	for _, seg := range s.Body() {
		dst.ClearCell(seg.X, seg.Y)
	}
}
