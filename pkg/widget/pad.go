package widget

import "github.com/tessera-ui/tessera/pkg/canvas"

// Padding is blank space reserved around a widget, in cells per side.
// The zero value pads nothing.
type Padding struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// PadAll pads every side by n.
func PadAll(n int) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// PadLeft pads only the left side.
func PadLeft(n int) Padding { return Padding{Left: n} }

// PadRight pads only the right side.
func PadRight(n int) Padding { return Padding{Right: n} }

// PadTop pads only the top.
func PadTop(n int) Padding { return Padding{Top: n} }

// PadBottom pads only the bottom.
func PadBottom(n int) Padding { return Padding{Bottom: n} }

// PadHorizontal pads left and right.
func PadHorizontal(n int) Padding { return Padding{Left: n, Right: n} }

// PadVertical pads top and bottom.
func PadVertical(n int) Padding { return Padding{Top: n, Bottom: n} }

// Add sums two paddings side by side.
func (p Padding) Add(q Padding) Padding {
	return Padding{
		Left:   p.Left + q.Left,
		Right:  p.Right + q.Right,
		Top:    p.Top + q.Top,
		Bottom: p.Bottom + q.Bottom,
	}
}

// Horizontal returns the total cells consumed on the x axis.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the total cells consumed on the y axis.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Padded surrounds one child with blank margins. Growth, keys, focus,
// cursor and nested groups all pass through to the child; positions
// propagate inward translated past the top-left margins.
type Padded struct {
	Base
	child Widget
	pad   Padding
}

var _ Widget = (*Padded)(nil)

// NewPadded wraps child with the given padding.
func NewPadded(child Widget, pad Padding) *Padded {
	p := &Padded{child: child, pad: pad}
	p.SetRenderFunc(p.render)
	p.SetGrowthFunc(child.GrowsHorizontally, child.GrowsVertically)
	p.SetPositionFunc(p.position)
	p.SetCursorFunc(child.CursorPosition)
	p.SetFocusGroupFunc(child.FocusGroup)
	p.OnKey(child.HandleKey)
	p.OnGainFocus(child.GainFocus)
	p.OnLoseFocus(child.LoseFocus)
	return p
}

// Child returns the wrapped widget.
func (p *Padded) Child() Widget {
	return p.child
}

func (p *Padded) render(avail canvas.Size, ctx Context) canvas.Image {
	inner := canvas.Size{
		Width:  max(0, avail.Width-p.pad.Horizontal()),
		Height: max(0, avail.Height-p.pad.Vertical()),
	}
	img := p.child.Render(inner, ctx)
	attr := ctx.Attr(canvas.Style{})
	core := canvas.HCat(
		canvas.Fill(' ', p.pad.Left, img.Height(), attr),
		img,
		canvas.Fill(' ', p.pad.Right, img.Height(), attr),
	)
	return canvas.VCat(
		canvas.Fill(' ', core.Width(), p.pad.Top, attr),
		core,
		canvas.Fill(' ', core.Width(), p.pad.Bottom, attr),
	)
}

func (p *Padded) position(pos canvas.Position) {
	p.child.SetPosition(pos.Add(p.pad.Left, p.pad.Top))
}
