package canvas

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell.
type Cell struct {
	Rune  rune
	Width uint8 // display width: 1 for most, 2 for CJK, 0 for continuation
	Style Style
}

// NewCell creates a cell for r, measuring its display width. Wide runes
// must be followed by a continuation cell in any row they appear in.
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		r, w = ' ', 1
	}
	return Cell{Rune: r, Width: uint8(w), Style: style}
}

// EmptyCell returns a blank cell with no style of its own.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// continuationCell marks the second column of a wide rune.
func continuationCell(style Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}
