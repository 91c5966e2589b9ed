package table

import (
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// columnWidths resolves per-column widths for a table occupying total
// width w. Fixed columns keep their declared width; the width left
// after fixed columns and border overhead is divided equally among
// auto columns, truncating. The remainder cells stay unused rather
// than being redistributed.
func (t *Table) columnWidths(w int) []int {
	numAuto := 0
	fixedTotal := 0
	for _, s := range t.specs {
		if s.size.auto {
			numAuto++
		} else {
			fixedTotal += s.size.width
		}
	}

	autoWidth := 0
	if numAuto > 0 {
		overhead := 0
		if t.borders.Edges() {
			overhead += 2
		}
		if t.borders.Columns() {
			overhead += len(t.specs) - 1
		}
		autoWidth = (w - fixedTotal - overhead) / numAuto
		if autoWidth < 0 {
			autoWidth = 0
		}
	}

	widths := make([]int, len(t.specs))
	for i, s := range t.specs {
		if s.size.auto {
			widths[i] = autoWidth
		} else {
			widths[i] = s.size.width
		}
	}
	return widths
}

func (t *Table) render(avail canvas.Size, ctx widget.Context) canvas.Image {
	widths := t.columnWidths(avail.Width)
	// The table's own normal attribute, where set, becomes the ambient
	// style its cells and chrome resolve against.
	cellCtx := ctx.WithNormal(t.normalAttr.Over(ctx.Normal))
	rowAttr := cellCtx.Attr(canvas.Style{})
	borderAttr := cellCtx.Attr(t.borderAttr)

	parts := make([]canvas.Image, 0, 2*len(t.rows)+2)
	if t.borders.Edges() {
		parts = append(parts, t.rule(widths, ruleTop, ctx.Skin, borderAttr))
	}
	for ri, row := range t.rows {
		if ri > 0 && t.borders.Rows() {
			parts = append(parts, t.rule(widths, ruleInner, ctx.Skin, borderAttr))
		}
		img := t.renderRow(ri, row, widths, avail.Height, cellCtx, rowAttr, borderAttr)
		if t.borders.Edges() {
			side := canvas.Fill(ctx.Skin.Vertical, 1, img.Height(), borderAttr)
			img = canvas.HCat(side, img, side)
		}
		parts = append(parts, img)
	}
	if t.borders.Edges() {
		parts = append(parts, t.rule(widths, ruleBottom, ctx.Skin, borderAttr))
	}
	return canvas.VCat(parts...)
}

// renderRow draws one row's cells at their column widths, right-pads
// narrow images, equalizes heights and interleaves column separators.
// A cell image wider than its column is a broken size contract and
// panics.
func (t *Table) renderRow(ri int, row []widget.Widget, widths []int, availH int,
	cellCtx widget.Context, rowAttr, borderAttr canvas.Style) canvas.Image {

	imgs := make([]canvas.Image, len(row))
	height := 0
	for ci, w := range row {
		if w == nil {
			continue
		}
		img := w.Render(canvas.Size{Width: widths[ci], Height: availH}, cellCtx)
		if img.Width() > widths[ci] {
			panic(&CellImageTooBigError{
				Row:        ri,
				Column:     ci,
				CellWidth:  widths[ci],
				ImageWidth: img.Width(),
			})
		}
		if img.Width() < widths[ci] {
			img = canvas.HCat(img, canvas.Fill(' ', widths[ci]-img.Width(), img.Height(), rowAttr))
		}
		if img.Height() > height {
			height = img.Height()
		}
		imgs[ci] = img
	}
	if height < 1 {
		height = 1
	}
	for ci := range imgs {
		if row[ci] == nil {
			imgs[ci] = canvas.Fill(' ', widths[ci], height, rowAttr)
			continue
		}
		if h := imgs[ci].Height(); h < height {
			imgs[ci] = canvas.VCat(imgs[ci], canvas.Fill(' ', widths[ci], height-h, rowAttr))
		}
	}

	if !t.borders.Columns() {
		return canvas.HCat(imgs...)
	}
	sep := canvas.Fill(cellCtx.Skin.Vertical, 1, height, borderAttr)
	joined := make([]canvas.Image, 0, 2*len(imgs)-1)
	for ci, img := range imgs {
		if ci > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, img)
	}
	return canvas.HCat(joined...)
}

type rulePosition int

const (
	ruleTop rulePosition = iota
	ruleInner
	ruleBottom
)

// rule draws one horizontal rule row. Column-boundary glyphs appear
// only when column separators are on; end caps only when edges are on
// (inner rules always are, since only edges introduce side borders for
// them to meet).
func (t *Table) rule(widths []int, pos rulePosition, skin widget.Skin, attr canvas.Style) canvas.Image {
	var left, joint, right rune
	switch pos {
	case ruleTop:
		left, joint, right = skin.CornerTL, skin.TeeTop, skin.CornerTR
	case ruleBottom:
		left, joint, right = skin.CornerBL, skin.TeeBottom, skin.CornerBR
	default:
		left, joint, right = skin.TeeLeft, skin.Cross, skin.TeeRight
	}

	segs := make([]canvas.Image, 0, 2*len(widths)+2)
	if t.borders.Edges() {
		segs = append(segs, canvas.Fill(left, 1, 1, attr))
	}
	for ci, w := range widths {
		if ci > 0 && t.borders.Columns() {
			segs = append(segs, canvas.Fill(joint, 1, 1, attr))
		}
		segs = append(segs, canvas.Fill(skin.Horizontal, w, 1, attr))
	}
	if t.borders.Edges() {
		segs = append(segs, canvas.Fill(right, 1, 1, attr))
	}
	return canvas.HCat(segs...)
}

// place assigns absolute origins to every populated cell widget,
// reproducing the geometry of the most recent render: column widths
// are recomputed from the table's own cached width (the width that
// render consumed, so the auto division is exact) and row heights from
// the cells' cached heights. Meaningful only after a render has filled
// those caches.
func (t *Table) place(origin canvas.Position) {
	widths := t.columnWidths(t.Size().Width)

	x0 := origin.X
	y := origin.Y
	if t.borders.Edges() {
		x0++
		y++
	}
	for ri, row := range t.rows {
		if ri > 0 && t.borders.Rows() {
			y++
		}
		x := x0
		height := 1
		for ci, w := range row {
			if w != nil {
				w.SetPosition(canvas.Position{X: x, Y: y})
				if h := w.Size().Height; h > height {
					height = h
				}
			}
			x += widths[ci]
			if t.borders.Columns() && ci < len(row)-1 {
				x++
			}
		}
		y += height
	}
}
