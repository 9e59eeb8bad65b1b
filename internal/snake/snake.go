// Package snake models the player's segmented body and its heading.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered body of cells, head at index 0, plus a heading.
// The body is never empty.
type Snake struct {
	body      []core.Point
	direction Direction
}

// New creates a one-segment snake at start heading dir.
func New(start core.Point, dir Direction) *Snake {
	return NewWithLength(start, dir, 1)
}

// NewWithLength creates a snake of n segments with the head at start and the
// tail laid out behind it, opposite to dir. Segments saturate at the zero edge.
func NewWithLength(start core.Point, dir Direction, n int) *Snake {
	s := &Snake{}
	s.Reset(start, dir, n)
	return s
}

// Reset rebuilds the snake in place with n segments (at least one) at start
// heading dir, reusing the body storage.
func (s *Snake) Reset(start core.Point, dir Direction, n int) {
	s.body = append(s.body[:0], start)
	s.direction = dir

	back := dir.Opposite().Delta()
	p := start
	for i := 1; i < n; i++ {
		p = p.Add(back)
		s.body = append(s.body, p)
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	body := make([]core.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection overwrites the heading. Callers reject reversals beforehand.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves the head one cell along the heading and shifts every trailing
// segment into the cell its predecessor held before the move. With grow set,
// a new tail segment is appended on the cell the old tail vacated.
func (s *Snake) Advance(grow bool) {
	prev := s.body[0]
	s.body[0] = prev.Add(s.direction.Delta())

	for i := 1; i < len(s.body); i++ {
		s.body[i], prev = prev, s.body[i]
	}

	if grow {
		s.body = append(s.body, prev)
	}
}
