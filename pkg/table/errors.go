package table

import "fmt"

// ColumnCountMismatchError rejects a row whose cell count differs from
// the table's column count. The table is unchanged after the failed
// call.
type ColumnCountMismatchError struct {
	Want int // the table's column count
	Got  int
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("table: row has %d cells, want %d", e.Got, e.Want)
}

// SizePolicyError rejects a row containing a cell widget that declares
// vertical growth. Row heights are fixed per render call, so a
// self-expanding child can never be satisfied. The table is unchanged
// after the failed call.
type SizePolicyError struct {
	Column int
}

func (e *SizePolicyError) Error() string {
	return fmt.Sprintf("table: cell widget in column %d grows vertically", e.Column)
}

// CellImageTooBigError reports a cell widget that rendered wider than
// its allotted column. It signals a broken widget size contract and is
// raised as a panic mid-render; no partial table image escapes.
type CellImageTooBigError struct {
	Row        int
	Column     int
	CellWidth  int
	ImageWidth int
}

func (e *CellImageTooBigError) Error() string {
	return fmt.Sprintf("table: cell (%d,%d) rendered %d cells wide, exceeding its %d-cell column",
		e.Row, e.Column, e.ImageWidth, e.CellWidth)
}
