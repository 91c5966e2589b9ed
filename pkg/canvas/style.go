package canvas

// AttrMask is a bitmask of text attributes. A zero mask is unset and
// inherits from the surrounding context.
type AttrMask uint16

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Style defines the visual attributes of a cell. The zero value leaves
// every field unset, deferring to whatever context the style is
// resolved against.
type Style struct {
	FG    Color
	BG    Color
	Attrs AttrMask
}

// WithFG returns a copy with the foreground color set.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns a copy with the background color set.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithAttrs returns a copy with the attribute mask set.
func (s Style) WithAttrs(a AttrMask) Style {
	s.Attrs = a
	return s
}

// Bold returns a copy with the bold attribute added.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a copy with the dim attribute added.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Italic returns a copy with the italic attribute added.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a copy with the underline attribute added.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a copy with the reverse-video attribute added.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Defined reports whether any field of the style is set.
func (s Style) Defined() bool {
	return s.FG.Defined() || s.BG.Defined() || s.Attrs != 0
}

// Over resolves s against a fallback: each field of s that is set wins,
// each unset field falls through to the corresponding field of under.
// Chaining Over expresses override precedence, highest first:
//
//	override.Over(local).Over(ambient)
func (s Style) Over(under Style) Style {
	out := s
	if !out.FG.Defined() {
		out.FG = under.FG
	}
	if !out.BG.Defined() {
		out.BG = under.BG
	}
	if out.Attrs == 0 {
		out.Attrs = under.Attrs
	}
	return out
}
