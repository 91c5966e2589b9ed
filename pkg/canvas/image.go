package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Image is an immutable rectangular grid of cells. Every row has the
// same cell width. Images are built with Text, Fill, HCat and VCat and
// never mutated in place.
type Image struct {
	rows [][]Cell
}

// Empty returns the zero-extent image.
func Empty() Image {
	return Image{}
}

// Text renders a single line of text as a one-row image. Wide runes
// occupy two cells (a lead cell and a continuation); control runes are
// replaced with spaces; zero-width runes are dropped. Newlines are not
// interpreted — callers split lines themselves. The empty string yields
// a zero-width image that is still one row tall, so blank lines keep
// their height under VCat.
func Text(s string, style Style) Image {
	row := make([]Cell, 0, len(s))
	for _, r := range s {
		if r < ' ' || r == 0x7f {
			r = ' '
		}
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			row = append(row, Cell{Rune: r, Width: 2, Style: style}, continuationCell(style))
		default:
			row = append(row, Cell{Rune: r, Width: 1, Style: style})
		}
	}
	return Image{rows: [][]Cell{row}}
}

// Fill returns a w by h image of repeated r. Wide runes consume two
// columns per repetition; a trailing odd column is left blank.
// Non-positive dimensions yield the empty image.
func Fill(r rune, w, h int, style Style) Image {
	if w <= 0 || h <= 0 {
		return Empty()
	}
	cw := runewidth.RuneWidth(r)
	if cw < 1 {
		r, cw = ' ', 1
	}
	row := make([]Cell, 0, w)
	for len(row)+cw <= w {
		row = append(row, Cell{Rune: r, Width: uint8(cw), Style: style})
		if cw == 2 {
			row = append(row, continuationCell(style))
		}
	}
	for len(row) < w {
		row = append(row, Cell{Rune: ' ', Width: 1, Style: style})
	}
	rows := make([][]Cell, h)
	for y := range rows {
		rows[y] = row
	}
	return Image{rows: rows}
}

// HCat concatenates images left to right. Shorter images are padded at
// the bottom with unstyled blanks to the tallest height.
func HCat(images ...Image) Image {
	height := 0
	width := 0
	for _, img := range images {
		if h := img.Height(); h > height {
			height = h
		}
		width += img.Width()
	}
	if height == 0 {
		return Empty()
	}
	rows := make([][]Cell, height)
	for y := range rows {
		row := make([]Cell, 0, width)
		for _, img := range images {
			if y < img.Height() {
				row = append(row, img.rows[y]...)
			} else {
				row = append(row, blankRow(img.Width())...)
			}
		}
		rows[y] = row
	}
	return Image{rows: rows}
}

// VCat concatenates images top to bottom. Narrower images are padded on
// the right with unstyled blanks to the widest width.
func VCat(images ...Image) Image {
	width := 0
	height := 0
	for _, img := range images {
		if w := img.Width(); w > width {
			width = w
		}
		height += img.Height()
	}
	if height == 0 {
		return Empty()
	}
	rows := make([][]Cell, 0, height)
	for _, img := range images {
		for _, src := range img.rows {
			if len(src) == width {
				rows = append(rows, src)
				continue
			}
			row := make([]Cell, 0, width)
			row = append(row, src...)
			row = append(row, blankRow(width-len(src))...)
			rows = append(rows, row)
		}
	}
	return Image{rows: rows}
}

func blankRow(w int) []Cell {
	row := make([]Cell, w)
	for i := range row {
		row[i] = EmptyCell()
	}
	return row
}

// Width returns the image width in cells.
func (m Image) Width() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

// Height returns the image height in rows.
func (m Image) Height() int {
	return len(m.rows)
}

// Size returns the image extent.
func (m Image) Size() Size {
	return Size{Width: m.Width(), Height: m.Height()}
}

// CellAt returns the cell at (x, y), or a blank cell when the
// coordinate is out of bounds.
func (m Image) CellAt(x, y int) Cell {
	if y < 0 || y >= len(m.rows) || x < 0 || x >= len(m.rows[y]) {
		return EmptyCell()
	}
	return m.rows[y][x]
}

// Rows exposes the underlying cell grid for painting. Callers must
// treat it as read-only.
func (m Image) Rows() [][]Cell {
	return m.rows
}

// String renders the image's runes as newline-separated lines,
// dropping style information. Continuation cells are skipped so wide
// runes appear once. Intended for tests and debugging.
func (m Image) String() string {
	var sb strings.Builder
	for y, row := range m.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Width == 0 {
				continue
			}
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w display cells.
func Truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}
