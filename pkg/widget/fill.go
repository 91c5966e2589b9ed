package widget

import "github.com/tessera-ui/tessera/pkg/canvas"

// HFill is a fixed-height band of one repeated rune that grows to the
// full available width.
type HFill struct {
	Base
	ch     rune
	height int
	style  canvas.Style
}

var _ Widget = (*HFill)(nil)

// NewHFill creates a horizontal fill of the given rune and height.
func NewHFill(ch rune, height int) *HFill {
	f := &HFill{ch: ch, height: height}
	f.SetRenderFunc(f.render)
	f.SetGrowth(true, false)
	return f
}

// SetStyle sets the widget-local attribute.
func (f *HFill) SetStyle(st canvas.Style) {
	f.style = st
}

func (f *HFill) render(avail canvas.Size, ctx Context) canvas.Image {
	return canvas.Fill(f.ch, avail.Width, min(f.height, avail.Height), ctx.Attr(f.style))
}

// VFill is a column of one repeated rune that grows to the full
// available height.
type VFill struct {
	Base
	ch    rune
	style canvas.Style
}

var _ Widget = (*VFill)(nil)

// NewVFill creates a vertical fill of the given rune.
func NewVFill(ch rune) *VFill {
	f := &VFill{ch: ch}
	f.SetRenderFunc(f.render)
	f.SetGrowth(false, true)
	return f
}

// SetStyle sets the widget-local attribute.
func (f *VFill) SetStyle(st canvas.Style) {
	f.style = st
}

func (f *VFill) render(avail canvas.Size, ctx Context) canvas.Image {
	return canvas.Fill(f.ch, avail.Width, avail.Height, ctx.Attr(f.style))
}
