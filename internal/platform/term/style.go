package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleSet holds one tcell style per glyph.
type styleSet struct {
	base   tcell.Style
	glyphs map[core.Glyph]tcell.Style
}

func newStyleSet() styleSet {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

	glyphs := make(map[core.Glyph]tcell.Style)
	for _, g := range []core.Glyph{
		core.GlyphBorder,
		core.GlyphSnakeHead,
		core.GlyphSnakeBody,
		core.GlyphFood,
		core.GlyphText,
	} {
		glyphs[g] = base.Foreground(tcellColor(g.Color()))
	}
	glyphs[core.GlyphSnakeHead] = glyphs[core.GlyphSnakeHead].Bold(true)
	glyphs[core.GlyphText] = glyphs[core.GlyphText].Bold(true)

	return styleSet{base: base, glyphs: glyphs}
}

func (s styleSet) glyph(g core.Glyph) tcell.Style {
	if st, ok := s.glyphs[g]; ok {
		return st
	}
	return s.base
}

// tcellColor maps core colors onto the 16-color palette.
func tcellColor(c core.Color) tcell.Color {
	switch c {
	case core.ColorRed:
		return tcell.ColorMaroon
	case core.ColorGreen:
		return tcell.ColorGreen
	case core.ColorYellow:
		return tcell.ColorOlive
	case core.ColorBlue:
		return tcell.ColorNavy
	case core.ColorBrightWhite:
		return tcell.ColorWhite
	default:
		return tcell.ColorReset
	}
}
