package core

// Glyph identifies what a board cell shows. The concrete rune and color are a
// presentation concern; Rune and Color give the defaults used by the bundled
// front-ends.
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphBorder
	GlyphSnakeHead
	GlyphSnakeBody
	GlyphFood
	GlyphText
)

// String returns the glyph name.
func (g Glyph) String() string {
	switch g {
	case GlyphEmpty:
		return "empty"
	case GlyphBorder:
		return "border"
	case GlyphSnakeHead:
		return "head"
	case GlyphSnakeBody:
		return "body"
	case GlyphFood:
		return "food"
	case GlyphText:
		return "text"
	default:
		return "unknown"
	}
}

// Rune returns the default character for the glyph.
// GlyphText has no fixed rune; the text itself is stored in the cell.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphBorder:
		return '#'
	case GlyphSnakeHead:
		return 'O'
	case GlyphSnakeBody:
		return 'o'
	case GlyphFood:
		return '*'
	default:
		return ' '
	}
}

// Color returns the default color for the glyph.
func (g Glyph) Color() Color {
	switch g {
	case GlyphBorder:
		return ColorRed
	case GlyphSnakeHead:
		return ColorBlue
	case GlyphSnakeBody:
		return ColorGreen
	case GlyphFood:
		return ColorYellow
	case GlyphText:
		return ColorBrightWhite
	default:
		return ColorDefault
	}
}
