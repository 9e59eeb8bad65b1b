package core

import (
	"strings"
)

// Cell is one screen position: the glyph kind and the rune to show for it.
type Cell struct {
	Rune  rune
	Glyph Glyph
}

// Screen is a 2D cell buffer implementing Canvas.
// It decouples board rendering from the terminal; front-ends without a cell
// API of their own (Bubble Tea) render it to a string each frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with empty cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Glyph: GlyphEmpty}
		}
	}
}

// SetCell places a glyph at the given position using its default rune.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, g Glyph) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: g.Rune(), Glyph: g}
}

// ClearCell erases the cell at the given position.
func (s *Screen) ClearCell(x, y int) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: ' ', Glyph: GlyphEmpty}
}

// DrawText writes a string horizontally starting at (x, y) as text cells.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			s.cells[y][x+i] = Cell{Rune: r, Glyph: GlyphText}
		}
		i++
	}
}

// Get returns the cell at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{Rune: ' ', Glyph: GlyphEmpty}
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// String converts the screen buffer to plain text.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Count returns how many cells currently show the glyph.
func (s *Screen) Count(g Glyph) int {
	n := 0
	for y := range s.cells {
		for _, c := range s.cells[y] {
			if c.Glyph == g {
				n++
			}
		}
	}
	return n
}

var _ Canvas = (*Screen)(nil)
