package widget

import (
	"strings"

	"github.com/tessera-ui/tessera/pkg/canvas"
)

// Text displays literal multi-line text, clipped to the offered
// region. It grows on neither axis.
type Text struct {
	Base
	text  string
	style canvas.Style
}

var _ Widget = (*Text)(nil)

// NewText creates a text widget.
func NewText(text string) *Text {
	t := &Text{text: text}
	t.SetRenderFunc(t.render)
	return t
}

// SetText replaces the displayed text.
func (t *Text) SetText(text string) {
	t.text = text
}

// Text returns the displayed text.
func (t *Text) Text() string {
	return t.text
}

// SetStyle sets the widget-local attribute; unset fields inherit from
// the context.
func (t *Text) SetStyle(st canvas.Style) {
	t.style = st
}

func (t *Text) render(avail canvas.Size, ctx Context) canvas.Image {
	if avail.Width <= 0 || avail.Height <= 0 {
		return canvas.Empty()
	}
	attr := ctx.Attr(t.style)
	if t.Focused() {
		attr = ctx.FocusedAttr(t.style)
	}
	lines := strings.Split(t.text, "\n")
	if len(lines) > avail.Height {
		lines = lines[:avail.Height]
	}
	imgs := make([]canvas.Image, len(lines))
	for i, line := range lines {
		imgs[i] = canvas.Text(canvas.Truncate(line, avail.Width), attr)
	}
	return canvas.VCat(imgs...)
}
