package widget

import "github.com/tessera-ui/tessera/pkg/canvas"

// Alignment positions a widget horizontally within the width it is
// offered.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// leftInset returns how many cells of blank space precede content of
// width w inside a region of width total.
func (a Alignment) leftInset(total, w int) int {
	gap := total - w
	if gap <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return gap / 2
	case AlignRight:
		return gap
	default:
		return 0
	}
}

// Aligned positions one child within the offered width. Left alignment
// renders the child untouched; center and right pad it out to the full
// width so the blank space lands on the correct side. Everything but
// rendering and positioning passes through to the child.
type Aligned struct {
	Base
	child Widget
	align Alignment
}

var _ Widget = (*Aligned)(nil)

// NewAligned wraps child with a horizontal alignment.
func NewAligned(child Widget, align Alignment) *Aligned {
	a := &Aligned{child: child, align: align}
	a.SetRenderFunc(a.render)
	a.SetGrowthFunc(child.GrowsHorizontally, child.GrowsVertically)
	a.SetPositionFunc(a.position)
	a.SetCursorFunc(child.CursorPosition)
	a.SetFocusGroupFunc(child.FocusGroup)
	a.OnKey(child.HandleKey)
	a.OnGainFocus(child.GainFocus)
	a.OnLoseFocus(child.LoseFocus)
	return a
}

// Child returns the wrapped widget.
func (a *Aligned) Child() Widget {
	return a.child
}

func (a *Aligned) render(avail canvas.Size, ctx Context) canvas.Image {
	img := a.child.Render(avail, ctx)
	if a.align == AlignLeft || img.Height() == 0 {
		return img
	}
	left := a.align.leftInset(avail.Width, img.Width())
	right := avail.Width - img.Width() - left
	attr := ctx.Attr(canvas.Style{})
	return canvas.HCat(
		canvas.Fill(' ', left, img.Height(), attr),
		img,
		canvas.Fill(' ', right, img.Height(), attr),
	)
}

func (a *Aligned) position(pos canvas.Position) {
	inset := a.align.leftInset(a.Size().Width, a.child.Size().Width)
	a.child.SetPosition(pos.Add(inset, 0))
}
