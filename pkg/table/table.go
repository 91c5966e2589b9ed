// Package table provides a grid layout and rendering engine for
// widgets. Columns are declared once as fixed-width or auto-sized;
// rows of cells are appended and validated against the declaration;
// rendering distributes leftover width across auto columns, equalizes
// row heights, and composes the configured border rules. A positioning
// pass reproduces the exact geometry of the most recent render to
// assign every cell widget its absolute origin.
package table

import (
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// ColumnSize declares how a column's width is determined: a fixed cell
// count, or an equal share of whatever width remains.
type ColumnSize struct {
	width int
	auto  bool
}

// ColFixed declares a column exactly w cells wide.
func ColFixed(w int) ColumnSize {
	return ColumnSize{width: w}
}

// ColAuto declares a column that shares the remaining width equally
// with the other auto columns.
func ColAuto() ColumnSize {
	return ColumnSize{auto: true}
}

// IsAuto reports whether the column is auto-sized.
func (s ColumnSize) IsAuto() bool {
	return s.auto
}

// Width returns the fixed width; zero for auto columns.
func (s ColumnSize) Width() int {
	return s.width
}

// ColumnSpec couples a column size with optional alignment and padding
// defaults for cells in that column.
type ColumnSpec struct {
	size  ColumnSize
	align *widget.Alignment
	pad   *widget.Padding
}

// Column creates a spec of the given size.
func Column(size ColumnSize) ColumnSpec {
	return ColumnSpec{size: size}
}

// WithAlignment returns a copy carrying a column-level alignment,
// overriding the table default for cells without their own.
func (c ColumnSpec) WithAlignment(a widget.Alignment) ColumnSpec {
	c.align = &a
	return c
}

// WithPadding returns a copy carrying a column-level padding.
func (c ColumnSpec) WithPadding(p widget.Padding) ColumnSpec {
	c.pad = &p
	return c
}

// Size returns the column's size declaration.
func (c ColumnSpec) Size() ColumnSize {
	return c.size
}

// BorderStyle selects which separator lines a table draws. It is a
// set: BorderNone draws nothing, BorderFull draws everything, and any
// other combination is a partial style.
type BorderStyle uint8

const (
	// BorderRows draws a horizontal rule between adjacent rows.
	BorderRows BorderStyle = 1 << iota
	// BorderColumns draws a vertical rule between adjacent columns.
	BorderColumns
	// BorderEdges frames the whole table.
	BorderEdges
)

// BorderNone draws no rules at all.
const BorderNone BorderStyle = 0

// BorderFull draws row and column rules and the outer frame.
const BorderFull = BorderRows | BorderColumns | BorderEdges

// Rows reports whether row separators are drawn.
func (b BorderStyle) Rows() bool { return b&BorderRows != 0 }

// Columns reports whether column separators are drawn.
func (b BorderStyle) Columns() bool { return b&BorderColumns != 0 }

// Edges reports whether the outer frame is drawn.
func (b BorderStyle) Edges() bool { return b&BorderEdges != 0 }

// Table lays out cell widgets in columns fixed at construction. Rows
// are append-only; alignment and padding are resolved when a row is
// added (cell override beats column spec beats table default) and
// baked into the stored row, so later changes to the defaults affect
// only rows added afterwards.
type Table struct {
	widget.Base

	specs   []ColumnSpec
	borders BorderStyle
	rows    [][]widget.Widget // resolved cell widgets; nil marks an empty cell

	defaultAlign widget.Alignment
	defaultPad   widget.Padding
	borderAttr   canvas.Style // unset fields inherit the ambient attribute
	normalAttr   canvas.Style // substituted for the children's ambient attribute
}

var _ widget.Widget = (*Table)(nil)

// New creates a table over the given column specs. The column count is
// the length of specs and never changes. The table grows horizontally
// exactly when some column is auto-sized and never grows vertically.
func New(specs []ColumnSpec, borders BorderStyle) *Table {
	t := &Table{
		specs:   append([]ColumnSpec(nil), specs...),
		borders: borders,
	}
	t.SetRenderFunc(t.render)
	t.SetPositionFunc(t.place)
	t.SetGrowthFunc(t.growsHorizontally, func() bool { return false })
	return t
}

func (t *Table) growsHorizontally() bool {
	for _, s := range t.specs {
		if s.size.auto {
			return true
		}
	}
	return false
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.specs)
}

// RowCount returns the number of rows added so far.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// BorderStyle returns the style fixed at construction.
func (t *Table) BorderStyle() BorderStyle {
	return t.borders
}

// SetDefaultCellAlignment sets the alignment for cells without a cell
// or column override. Applies to rows added from now on.
func (t *Table) SetDefaultCellAlignment(a widget.Alignment) {
	t.defaultAlign = a
}

// SetDefaultCellPadding sets the padding for cells without a cell or
// column override. Applies to rows added from now on.
func (t *Table) SetDefaultCellPadding(p widget.Padding) {
	t.defaultPad = p
}

// SetBorderAttr overrides the attribute used for rules and corners;
// unset fields keep inheriting from the context.
func (t *Table) SetBorderAttr(st canvas.Style) {
	t.borderAttr = st
}

// SetNormalAttr overrides the ambient attribute the table hands its
// cells and uses for its own blank space.
func (t *Table) SetNormalAttr(st canvas.Style) {
	t.normalAttr = st
}

// AddRow validates and appends one row assembled from the given items.
// The cell count must equal the column count and no cell widget may
// declare vertical growth; a failed call returns a typed error and
// leaves the table exactly as it was. On success each populated cell
// is wrapped once with its resolved alignment and padding.
func (t *Table) AddRow(items ...RowItem) error {
	cells := NewRow(items...).cells
	if len(cells) != len(t.specs) {
		return &ColumnCountMismatchError{Want: len(t.specs), Got: len(cells)}
	}
	for i, c := range cells {
		if c.content != nil && c.content.GrowsVertically() {
			return &SizePolicyError{Column: i}
		}
	}

	resolved := make([]widget.Widget, len(cells))
	for i, c := range cells {
		if c.content == nil {
			continue
		}
		align := t.defaultAlign
		if t.specs[i].align != nil {
			align = *t.specs[i].align
		}
		if c.align != nil {
			align = *c.align
		}
		pad := t.defaultPad
		if t.specs[i].pad != nil {
			pad = *t.specs[i].pad
		}
		if c.pad != nil {
			pad = *c.pad
		}
		resolved[i] = widget.NewPadded(widget.NewAligned(c.content, align), pad)
	}
	t.rows = append(t.rows, resolved)
	return nil
}

// AddHeadingRow appends a row of text cells sharing one style, for
// column headers. It returns the created widgets so callers can
// restyle or update them later.
func (t *Table) AddHeadingRow(st canvas.Style, labels ...string) ([]*widget.Text, error) {
	texts := make([]*widget.Text, len(labels))
	items := make([]RowItem, len(labels))
	for i, label := range labels {
		w := widget.NewText(label)
		w.SetStyle(st)
		texts[i] = w
		items[i] = NewCell(w)
	}
	if err := t.AddRow(items...); err != nil {
		return nil, err
	}
	return texts, nil
}
