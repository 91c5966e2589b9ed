package widget

import "github.com/tessera-ui/tessera/pkg/canvas"

// Context carries the ambient rendering state threaded unchanged
// through every draw call unless a component locally overrides a
// field: a normal attribute, an optional attribute for focused
// widgets, an optional override that beats everything, and the skin
// supplying rule and corner glyphs.
type Context struct {
	Normal   canvas.Style
	Focus    canvas.Style
	Override canvas.Style
	Skin     Skin
}

// DefaultContext returns a context with terminal-default attributes
// and the unicode skin.
func DefaultContext() Context {
	return Context{Skin: DefaultSkin()}
}

// Attr resolves a component-local style against the context:
// override beats local beats ambient normal; unset fields fall
// through, ending at the terminal defaults.
func (c Context) Attr(local canvas.Style) canvas.Style {
	return c.Override.Over(local).Over(c.Normal)
}

// FocusedAttr resolves like Attr but slots the context's focus
// attribute above the component-local one.
func (c Context) FocusedAttr(local canvas.Style) canvas.Style {
	return c.Override.Over(c.Focus).Over(local).Over(c.Normal)
}

// WithNormal returns a copy with the ambient normal attribute
// replaced. Containers use it to substitute their own resolved
// default for their children's ambient attribute.
func (c Context) WithNormal(st canvas.Style) Context {
	c.Normal = st
	return c
}

// WithFocus returns a copy with the focus attribute replaced.
func (c Context) WithFocus(st canvas.Style) Context {
	c.Focus = st
	return c
}

// WithOverride returns a copy with the override attribute replaced.
func (c Context) WithOverride(st canvas.Style) Context {
	c.Override = st
	return c
}

// Skin supplies the glyphs used for rules, corners and intersections.
type Skin struct {
	Horizontal rune
	Vertical   rune
	CornerTL   rune
	CornerTR   rune
	CornerBL   rune
	CornerBR   rune
	TeeLeft    rune // left edge meeting an interior rule
	TeeRight   rune
	TeeTop     rune // top edge meeting an interior rule
	TeeBottom  rune
	Cross      rune
}

// DefaultSkin returns the unicode box-drawing skin.
func DefaultSkin() Skin {
	return Skin{
		Horizontal: '─',
		Vertical:   '│',
		CornerTL:   '┌',
		CornerTR:   '┐',
		CornerBL:   '└',
		CornerBR:   '┘',
		TeeLeft:    '├',
		TeeRight:   '┤',
		TeeTop:     '┬',
		TeeBottom:  '┴',
		Cross:      '┼',
	}
}

// ASCIISkin returns a seven-bit fallback skin.
func ASCIISkin() Skin {
	return Skin{
		Horizontal: '-',
		Vertical:   '|',
		CornerTL:   '+',
		CornerTR:   '+',
		CornerBL:   '+',
		CornerBR:   '+',
		TeeLeft:    '+',
		TeeRight:   '+',
		TeeTop:     '+',
		TeeBottom:  '+',
		Cross:      '+',
	}
}
