package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// labeledTable builds a table over the given columns and fills it with
// one single-cell text widget per label row.
func labeledTable(t *testing.T, specs []ColumnSpec, borders BorderStyle, rows ...[]string) *Table {
	t.Helper()
	tbl := New(specs, borders)
	for _, labels := range rows {
		items := make([]RowItem, len(labels))
		for i, label := range labels {
			items[i] = NewCell(widget.NewText(label))
		}
		require.NoError(t, tbl.AddRow(items...))
	}
	return tbl
}

func draw(tbl *Table, w, h int) canvas.Image {
	return tbl.Render(canvas.Size{Width: w, Height: h}, widget.DefaultContext())
}

func TestRenderBorderFull(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderFull,
		[]string{"a", "b"},
		[]string{"c", "d"},
	)

	img := draw(tbl, 20, 10)
	assert.Equal(t,
		"┌───┬───┐\n"+
			"│a  │b  │\n"+
			"├───┼───┤\n"+
			"│c  │d  │\n"+
			"└───┴───┘",
		img.String())
	assert.Equal(t, canvas.Size{Width: 9, Height: 5}, img.Size())
	assert.Equal(t, canvas.Size{Width: 9, Height: 5}, tbl.Size(),
		"render caches the table's own size")
}

func TestRenderBorderNone(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderNone,
		[]string{"a", "b"},
		[]string{"c", "d"},
	)

	img := draw(tbl, 20, 10)
	assert.Equal(t, "a  b  \nc  d  ", img.String())
}

func TestRenderPartialBorders(t *testing.T) {
	cases := []struct {
		name    string
		borders BorderStyle
		want    string
	}{
		{
			name:    "rows only",
			borders: BorderRows,
			want: "a  b  \n" +
				"──────\n" +
				"c  d  ",
		},
		{
			name:    "columns only",
			borders: BorderColumns,
			want: "a  │b  \n" +
				"c  │d  ",
		},
		{
			name:    "edges only",
			borders: BorderEdges,
			want: "┌──────┐\n" +
				"│a  b  │\n" +
				"│c  d  │\n" +
				"└──────┘",
		},
		{
			name:    "rows and columns",
			borders: BorderRows | BorderColumns,
			want: "a  │b  \n" +
				"───┼───\n" +
				"c  │d  ",
		},
		{
			name:    "edges and columns",
			borders: BorderEdges | BorderColumns,
			want: "┌───┬───┐\n" +
				"│a  │b  │\n" +
				"│c  │d  │\n" +
				"└───┴───┘",
		},
		{
			name:    "edges and rows",
			borders: BorderEdges | BorderRows,
			want: "┌──────┐\n" +
				"│a  b  │\n" +
				"├──────┤\n" +
				"│c  d  │\n" +
				"└──────┘",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := labeledTable(t, twoFixedColumns(), tc.borders,
				[]string{"a", "b"},
				[]string{"c", "d"},
			)
			assert.Equal(t, tc.want, draw(tbl, 20, 10).String())
		})
	}
}

func TestRenderASCIISkin(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderFull, []string{"a", "b"})

	ctx := widget.DefaultContext()
	ctx.Skin = widget.ASCIISkin()
	img := tbl.Render(canvas.Size{Width: 20, Height: 10}, ctx)
	assert.Equal(t,
		"+---+---+\n"+
			"|a  |b  |\n"+
			"+---+---+",
		img.String())
}

func TestAutoColumnWidths(t *testing.T) {
	t.Run("divides leftover space equally", func(t *testing.T) {
		tbl := labeledTable(t,
			[]ColumnSpec{
				Column(ColFixed(10)),
				Column(ColFixed(10)),
				Column(ColAuto()),
				Column(ColAuto()),
			},
			BorderFull,
			[]string{"a", "b", "c", "d"},
		)

		assert.Equal(t, []int{10, 10, 27, 27}, tbl.columnWidths(80))

		img := draw(tbl, 80, 10)
		assert.Equal(t, 79, img.Width(), "the odd leftover cell stays unused")
		assert.LessOrEqual(t, img.Width(), 80)
	})

	t.Run("single auto column", func(t *testing.T) {
		tbl := New([]ColumnSpec{Column(ColFixed(20)), Column(ColAuto())}, BorderFull)
		assert.Equal(t, []int{20, 7}, tbl.columnWidths(30))
	})

	t.Run("no borders means no overhead", func(t *testing.T) {
		tbl := New([]ColumnSpec{Column(ColFixed(20)), Column(ColAuto())}, BorderNone)
		assert.Equal(t, []int{20, 10}, tbl.columnWidths(30))
	})

	t.Run("columns without edges", func(t *testing.T) {
		tbl := New([]ColumnSpec{Column(ColFixed(20)), Column(ColAuto())}, BorderColumns)
		assert.Equal(t, []int{20, 9}, tbl.columnWidths(30))
	})

	t.Run("auto width clamps at zero", func(t *testing.T) {
		tbl := New([]ColumnSpec{
			Column(ColFixed(10)),
			Column(ColFixed(10)),
			Column(ColAuto()),
			Column(ColAuto()),
		}, BorderFull)
		assert.Equal(t, []int{10, 10, 0, 0}, tbl.columnWidths(10))
	})
}

func TestRowHeightEqualization(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderNone,
		[]string{"x\ny", "a"},
		[]string{"c", "d"},
	)

	img := draw(tbl, 20, 10)
	assert.Equal(t,
		"x  a  \n"+
			"y     \n"+
			"c  d  ",
		img.String())
}

func TestColumnSeparatorSpansRowHeight(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderColumns, []string{"x\ny", "a"})

	img := draw(tbl, 20, 10)
	assert.Equal(t,
		"x  │a  \n"+
			"y  │   ",
		img.String())
}

func TestRenderEmptyCells(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(EmptyCell(), NewCell(widget.NewText("b"))))
	require.NoError(t, tbl.AddRow(EmptyCell(), EmptyCell()))

	img := draw(tbl, 20, 10)
	assert.Equal(t, "   b  \n      ", img.String(),
		"empty cells take their column's space; a row of them is one cell tall")
}

func TestBorderAttrStylesChromeOnly(t *testing.T) {
	tbl := labeledTable(t, twoFixedColumns(), BorderFull, []string{"a", "b"})
	tbl.SetBorderAttr(canvas.Style{FG: canvas.ColorRed})

	img := draw(tbl, 20, 10)
	assert.Equal(t, canvas.ColorRed, img.CellAt(0, 0).Style.FG, "corner glyph")
	assert.Equal(t, canvas.ColorRed, img.CellAt(4, 1).Style.FG, "column separator")
	assert.False(t, img.CellAt(1, 1).Style.FG.Defined(), "cell content is not border chrome")
}

func TestNormalAttrFillsCellBackground(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(EmptyCell(), NewCell(widget.NewText("b"))))
	tbl.SetNormalAttr(canvas.Style{BG: canvas.ColorBlue})

	img := draw(tbl, 20, 10)
	assert.Equal(t, canvas.ColorBlue, img.CellAt(0, 0).Style.BG, "empty cell fill")
	assert.Equal(t, canvas.ColorBlue, img.CellAt(3, 0).Style.BG, "text cell inherits ambient")
	assert.Equal(t, canvas.ColorBlue, img.CellAt(4, 0).Style.BG, "right-pad fill")
}

// fixedImage renders the same image regardless of the space offered,
// for provoking size-contract violations.
type fixedImage struct {
	widget.Base
	img canvas.Image
}

func newFixedImage(img canvas.Image) *fixedImage {
	w := &fixedImage{img: img}
	w.SetRenderFunc(func(canvas.Size, widget.Context) canvas.Image { return w.img })
	return w
}

func TestOversizedCellImagePanics(t *testing.T) {
	tbl := New(twoFixedColumns(), BorderNone)
	oversized := newFixedImage(canvas.Fill('x', 10, 1, canvas.Style{}))
	require.NoError(t, tbl.AddRow(NewCell(oversized), NewCell(widget.NewText("b"))))

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		draw(tbl, 20, 5)
	}()

	require.NotNil(t, recovered)
	failure, ok := recovered.(*CellImageTooBigError)
	require.True(t, ok, "panic value is the typed render failure, got %T", recovered)
	assert.Equal(t, 0, failure.Row)
	assert.Equal(t, 0, failure.Column)
	assert.Equal(t, 3, failure.CellWidth)
	assert.Equal(t, 10, failure.ImageWidth)
	assert.Equal(t,
		"table: cell (0,0) rendered 10 cells wide, exceeding its 3-cell column",
		failure.Error())
}

func TestPositioningMatchesRenderGeometry(t *testing.T) {
	a, b := widget.NewText("a"), widget.NewText("b")
	c, d := widget.NewText("c"), widget.NewText("d")

	tbl := New([]ColumnSpec{Column(ColFixed(2)), Column(ColAuto())}, BorderFull)
	require.NoError(t, tbl.AddRow(NewCell(a), NewCell(b)))
	require.NoError(t, tbl.AddRow(NewCell(c), NewCell(d)))

	img := draw(tbl, 11, 8)
	require.Equal(t, canvas.Size{Width: 11, Height: 5}, img.Size())

	tbl.SetPosition(canvas.Position{X: 0, Y: 0})

	assert.Equal(t, canvas.Position{X: 1, Y: 1}, a.Position())
	assert.Equal(t, canvas.Position{X: 4, Y: 1}, b.Position())
	assert.Equal(t, canvas.Position{X: 1, Y: 3}, c.Position())
	assert.Equal(t, canvas.Position{X: 4, Y: 3}, d.Position())
}

func TestPositioningWithoutBorders(t *testing.T) {
	a, b := widget.NewText("a"), widget.NewText("b")
	c, d := widget.NewText("c"), widget.NewText("d")

	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(NewCell(a), NewCell(b)))
	require.NoError(t, tbl.AddRow(NewCell(c), NewCell(d)))

	draw(tbl, 20, 10)
	tbl.SetPosition(canvas.Position{X: 10, Y: 20})

	assert.Equal(t, canvas.Position{X: 10, Y: 20}, a.Position())
	assert.Equal(t, canvas.Position{X: 13, Y: 20}, b.Position())
	assert.Equal(t, canvas.Position{X: 10, Y: 21}, c.Position())
	assert.Equal(t, canvas.Position{X: 13, Y: 21}, d.Position())
}

func TestPositioningUsesRowHeights(t *testing.T) {
	tall := widget.NewText("x\ny")
	a := widget.NewText("a")
	c, d := widget.NewText("c"), widget.NewText("d")

	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(NewCell(tall), NewCell(a)))
	require.NoError(t, tbl.AddRow(NewCell(c), NewCell(d)))

	draw(tbl, 20, 10)
	tbl.SetPosition(canvas.Position{X: 0, Y: 0})

	assert.Equal(t, canvas.Position{X: 0, Y: 0}, tall.Position())
	assert.Equal(t, canvas.Position{X: 0, Y: 2}, c.Position(), "second row starts below the two-line first row")
	assert.Equal(t, canvas.Position{X: 3, Y: 2}, d.Position())
}

func TestPositioningAppliesCellAlignment(t *testing.T) {
	b := widget.NewText("b")

	tbl := New([]ColumnSpec{
		Column(ColFixed(2)),
		Column(ColAuto()).WithAlignment(widget.AlignRight),
	}, BorderFull)
	require.NoError(t, tbl.AddRow(NewCell(widget.NewText("a")), NewCell(b)))

	draw(tbl, 11, 8)
	tbl.SetPosition(canvas.Position{X: 0, Y: 0})

	assert.Equal(t, canvas.Position{X: 9, Y: 1}, b.Position(),
		"right alignment shifts the content origin inside its column")
}

func TestPositioningSkipsEmptyCells(t *testing.T) {
	b := widget.NewText("b")

	tbl := New(twoFixedColumns(), BorderNone)
	require.NoError(t, tbl.AddRow(EmptyCell(), NewCell(b)))

	draw(tbl, 20, 10)
	tbl.SetPosition(canvas.Position{X: 0, Y: 0})

	assert.Equal(t, canvas.Position{X: 3, Y: 0}, b.Position(),
		"the empty cell still advances the column origin")
}
