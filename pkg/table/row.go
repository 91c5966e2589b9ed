package table

import "github.com/tessera-ui/tessera/pkg/widget"

// RowItem is anything that can contribute cells to a table row: a
// single Cell, or a Row of them. Items concatenate left to right and
// the grammar is associative, so heterogeneous fragments can be built
// independently and joined.
type RowItem interface {
	rowCells() []Cell
}

// Cell is one table slot: either a widget with optional alignment and
// padding overrides, or an empty placeholder.
type Cell struct {
	content widget.Widget
	align   *widget.Alignment
	pad     *widget.Padding
}

// NewCell wraps a widget as a table cell.
func NewCell(w widget.Widget) Cell {
	return Cell{content: w}
}

// EmptyCell returns a cell with no content. It renders as blank space
// sized like any other cell in its column.
func EmptyCell() Cell {
	return Cell{}
}

// WithAlignment returns a copy carrying a cell-level alignment
// override, the strongest in the cell > column > table precedence.
func (c Cell) WithAlignment(a widget.Alignment) Cell {
	c.align = &a
	return c
}

// WithPadding returns a copy carrying a cell-level padding override.
func (c Cell) WithPadding(p widget.Padding) Cell {
	c.pad = &p
	return c
}

// IsEmpty reports whether the cell has no content.
func (c Cell) IsEmpty() bool {
	return c.content == nil
}

// Content returns the wrapped widget, nil for empty cells.
func (c Cell) Content() widget.Widget {
	return c.content
}

func (c Cell) rowCells() []Cell {
	return []Cell{c}
}

// Row is an ordered sequence of cells.
type Row struct {
	cells []Cell
}

// NewRow concatenates items into one row.
func NewRow(items ...RowItem) Row {
	var cells []Cell
	for _, item := range items {
		cells = append(cells, item.rowCells()...)
	}
	return Row{cells: cells}
}

// Cells returns the row's cells in order.
func (r Row) Cells() []Cell {
	return r.cells
}

func (r Row) rowCells() []Cell {
	return r.cells
}
