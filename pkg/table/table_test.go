package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/widget"
)

func twoFixedColumns() []ColumnSpec {
	return []ColumnSpec{Column(ColFixed(3)), Column(ColFixed(3))}
}

func TestColumnSize(t *testing.T) {
	fixed := ColFixed(12)
	assert.False(t, fixed.IsAuto())
	assert.Equal(t, 12, fixed.Width())

	auto := ColAuto()
	assert.True(t, auto.IsAuto())
	assert.Equal(t, 0, auto.Width())
}

func TestBorderStyleBits(t *testing.T) {
	assert.False(t, BorderNone.Rows())
	assert.False(t, BorderNone.Columns())
	assert.False(t, BorderNone.Edges())

	assert.True(t, BorderFull.Rows())
	assert.True(t, BorderFull.Columns())
	assert.True(t, BorderFull.Edges())

	partial := BorderRows | BorderEdges
	assert.True(t, partial.Rows())
	assert.False(t, partial.Columns())
	assert.True(t, partial.Edges())
}

func TestNewCopiesColumnSpecs(t *testing.T) {
	specs := twoFixedColumns()
	tbl := New(specs, BorderNone)

	specs[0] = Column(ColFixed(9))

	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, []int{3, 3}, tbl.columnWidths(20))
}

func TestRowGrammar(t *testing.T) {
	a := widget.NewText("a")
	b := widget.NewText("b")

	t.Run("individual cells", func(t *testing.T) {
		tbl := New(twoFixedColumns(), BorderNone)
		require.NoError(t, tbl.AddRow(NewCell(a), NewCell(b)))
		assert.Equal(t, 1, tbl.RowCount())
	})

	t.Run("whole row as one item", func(t *testing.T) {
		tbl := New(twoFixedColumns(), BorderNone)
		require.NoError(t, tbl.AddRow(NewRow(NewCell(a), NewCell(b))))
		assert.Equal(t, 1, tbl.RowCount())
	})

	t.Run("mixed items", func(t *testing.T) {
		tbl := New(twoFixedColumns(), BorderNone)
		require.NoError(t, tbl.AddRow(NewRow(NewCell(a)), NewCell(b)))
		assert.Equal(t, 1, tbl.RowCount())
	})

	t.Run("concatenation groups freely", func(t *testing.T) {
		c := widget.NewText("c")
		leftGrouped := NewRow(NewRow(NewCell(a), NewCell(b)), NewCell(c))
		rightGrouped := NewRow(NewCell(a), NewRow(NewCell(b), NewCell(c)))

		require.Len(t, leftGrouped.Cells(), 3)
		require.Len(t, rightGrouped.Cells(), 3)
		for i := range leftGrouped.Cells() {
			assert.Same(t, leftGrouped.Cells()[i].Content(), rightGrouped.Cells()[i].Content())
		}
	})
}

func TestAddRowColumnCountMismatch(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)

	err := tbl.AddRow(NewCell(widget.NewText("only")))
	require.Error(t, err)

	var mismatch *ColumnCountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Want)
	assert.Equal(t, 1, mismatch.Got)
	assert.Equal(t, "table: row has 1 cells, want 2", err.Error())

	assert.Equal(t, 0, tbl.RowCount(), "failed AddRow must not change the table")
}

func TestAddRowRejectsVerticalGrowth(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(NewCell(widget.NewText("a")), NewCell(widget.NewText("b"))))

	err := tbl.AddRow(NewCell(widget.NewText("ok")), NewCell(widget.NewVFill('~')))
	require.Error(t, err)

	var policy *SizePolicyError
	require.ErrorAs(t, err, &policy)
	assert.Equal(t, 1, policy.Column)

	assert.Equal(t, 1, tbl.RowCount(), "failed AddRow must not change the table")
}

func TestAddRowEmptyCells(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(EmptyCell(), NewCell(widget.NewText("b"))))
	require.NoError(t, tbl.AddRow(EmptyCell(), EmptyCell()))
	assert.Equal(t, 2, tbl.RowCount())

	assert.True(t, EmptyCell().IsEmpty())
	assert.False(t, NewCell(widget.NewText("x")).IsEmpty())
}

func TestCellAlignmentPrecedence(t *testing.T) {
	cases := []struct {
		name string
		spec ColumnSpec
		cell Cell
		want string
	}{
		{
			name: "table default applies",
			spec: Column(ColFixed(5)),
			cell: NewCell(widget.NewText("ab")),
			want: "   ab",
		},
		{
			name: "column overrides table",
			spec: Column(ColFixed(5)).WithAlignment(widget.AlignCenter),
			cell: NewCell(widget.NewText("ab")),
			want: " ab  ",
		},
		{
			name: "cell overrides column",
			spec: Column(ColFixed(5)).WithAlignment(widget.AlignCenter),
			cell: NewCell(widget.NewText("ab")).WithAlignment(widget.AlignLeft),
			want: "ab   ",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New([]ColumnSpec{tc.spec}, BorderNone)
			tbl.SetDefaultCellAlignment(widget.AlignRight)
			require.NoError(t, tbl.AddRow(tc.cell))

			img := tbl.Render(canvas.Size{Width: 20, Height: 5}, widget.DefaultContext())
			assert.Equal(t, tc.want, img.String())
		})
	}
}

func TestCellPaddingPrecedence(t *testing.T) {
	cases := []struct {
		name string
		spec ColumnSpec
		cell Cell
		want string
	}{
		{
			name: "table default applies",
			spec: Column(ColFixed(4)),
			cell: NewCell(widget.NewText("ab")),
			want: " ab ",
		},
		{
			name: "column overrides table",
			spec: Column(ColFixed(4)).WithPadding(widget.PadLeft(2)),
			cell: NewCell(widget.NewText("ab")),
			want: "  ab",
		},
		{
			name: "cell overrides column",
			spec: Column(ColFixed(4)).WithPadding(widget.PadLeft(2)),
			cell: NewCell(widget.NewText("ab")).WithPadding(widget.Padding{}),
			want: "ab  ",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New([]ColumnSpec{tc.spec}, BorderNone)
			tbl.SetDefaultCellPadding(widget.PadLeft(1))
			require.NoError(t, tbl.AddRow(tc.cell))

			img := tbl.Render(canvas.Size{Width: 20, Height: 5}, widget.DefaultContext())
			assert.Equal(t, tc.want, img.String())
		})
	}
}

func TestDefaultsAreNotRetroactive(t *testing.T) {
	tbl := New([]ColumnSpec{Column(ColFixed(5))}, BorderNone)
	require.NoError(t, tbl.AddRow(NewCell(widget.NewText("ab"))))

	tbl.SetDefaultCellAlignment(widget.AlignRight)
	require.NoError(t, tbl.AddRow(NewCell(widget.NewText("cd"))))

	img := tbl.Render(canvas.Size{Width: 20, Height: 5}, widget.DefaultContext())
	assert.Equal(t, "ab   \n   cd", img.String(),
		"rows keep the defaults in force when they were added")
}

func TestGrowthPolicy(t *testing.T) {
	fixed := New(twoFixedColumns(), BorderNone)
	assert.False(t, fixed.GrowsHorizontally())
	assert.False(t, fixed.GrowsVertically())

	auto := New([]ColumnSpec{Column(ColFixed(3)), Column(ColAuto())}, BorderNone)
	assert.True(t, auto.GrowsHorizontally())
	assert.False(t, auto.GrowsVertically())
}

func TestAddHeadingRow(t *testing.T) {
	st := canvas.Style{FG: canvas.ColorCyan}.Bold()

	tbl := New(twoFixedColumns(), BorderNone)
	texts, err := tbl.AddHeadingRow(st, "ID", "NM")
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, 1, tbl.RowCount())

	img := tbl.Render(canvas.Size{Width: 20, Height: 5}, widget.DefaultContext())
	assert.Equal(t, "ID NM ", img.String())
	assert.Equal(t, st, img.CellAt(0, 0).Style)

	texts, err = tbl.AddHeadingRow(st, "too", "many", "labels")
	require.Error(t, err)
	assert.Nil(t, texts)
	assert.Equal(t, 1, tbl.RowCount())
}
