package core

// Canvas is the draw contract between the board and a front-end.
// Calls are batched; the owner decides when to flush them to the terminal.
type Canvas interface {
	// SetCell draws one logical cell with the given glyph.
	SetCell(x, y int, g Glyph)

	// ClearCell erases one logical cell.
	ClearCell(x, y int)

	// DrawText writes a text overlay starting at (x, y).
	DrawText(x, y int, text string)

	// Clear erases every cell.
	Clear()
}
