package core

import "time"

// Board limits applied to the terminal size queried at session start.
const (
	MaxBoardWidth  = 150
	MaxBoardHeight = 40
)

// Forever is the PollEvent timeout that blocks until an event arrives.
const Forever time.Duration = -1

// BoardSize clamps terminal dimensions to the usable board area.
func BoardSize(termW, termH, maxW, maxH int) (int, int) {
	if maxW <= 0 {
		maxW = MaxBoardWidth
	}
	if maxH <= 0 {
		maxH = MaxBoardHeight
	}
	return Clamp(termW, 0, maxW), Clamp(termH, 0, maxH)
}
