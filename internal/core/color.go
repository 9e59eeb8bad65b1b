package core

// Color represents a foreground color for a screen cell.
// Front-ends translate it to lipgloss or tcell colors.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorBrightWhite
)
