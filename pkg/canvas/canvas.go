// Package canvas provides the cell-grid drawing substrate for terminal
// widgets: colors and attributes with explicit "unset" states, styled
// cells, and an immutable Image type with concatenation and fill
// primitives. Widgets render to Images; a backend paints Images to the
// terminal.
package canvas

// Size is a (width, height) extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Position is an absolute (column, row) coordinate in terminal cells,
// origin at the top-left.
type Position struct {
	X int
	Y int
}

// Add returns p translated by dx columns and dy rows.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
