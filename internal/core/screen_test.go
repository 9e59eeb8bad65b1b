package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	if n := s.Count(GlyphEmpty); n != 80*24 {
		t.Errorf("New screen should be all empty, got %d empty cells", n)
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, GlyphFood)
	got := s.Get(5, 5)
	if got.Glyph != GlyphFood || got.Rune != GlyphFood.Rune() {
		t.Errorf("Get(5, 5) = %+v, expected food", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, GlyphBorder)
	s.SetCell(100, 0, GlyphBorder)
	s.SetCell(0, -1, GlyphBorder)
	s.SetCell(0, 100, GlyphBorder)

	if s.Count(GlyphBorder) != 0 {
		t.Error("Out of bounds SetCell should not draw")
	}
	if s.Get(-1, 0).Glyph != GlyphEmpty {
		t.Error("Out of bounds Get should return an empty cell")
	}

	s.ClearCell(5, 5)
	if s.Get(5, 5).Glyph != GlyphEmpty {
		t.Error("ClearCell should erase the cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, GlyphBorder)
		}
	}

	s.Clear()

	if n := s.Count(GlyphEmpty); n != 100 {
		t.Errorf("After Clear, expected 100 empty cells, got %d", n)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		c := s.Get(2+i, 1)
		if c.Rune != ch || c.Glyph != GlyphText {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(0, 0, GlyphBorder)
	s.SetCell(1, 1, GlyphSnakeHead)
	s.SetCell(2, 2, GlyphFood)

	result := s.String()
	expected := "#  \n O \n  *"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestGlyphDefaults(t *testing.T) {
	glyphs := []Glyph{GlyphBorder, GlyphSnakeHead, GlyphSnakeBody, GlyphFood}
	seen := make(map[rune]Glyph)
	for _, g := range glyphs {
		r := g.Rune()
		if r == ' ' {
			t.Errorf("%v should have a visible rune", g)
		}
		if other, ok := seen[r]; ok {
			t.Errorf("%v and %v share rune %q", g, other, r)
		}
		seen[r] = g
	}
	if GlyphEmpty.Rune() != ' ' {
		t.Error("empty glyph should render as space")
	}
}
