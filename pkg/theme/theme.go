// Package theme loads the visual vocabulary of a composed interface
// from YAML and resolves it into the render context widgets draw with.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// StyleSpec is one style as written in a theme file. Colors are named
// ("red", "bright-cyan"), palette indices ("214"), or hex ("#1e2030");
// an empty color inherits from the surrounding context.
type StyleSpec struct {
	FG        string `yaml:"fg"`
	BG        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Dim       bool   `yaml:"dim"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
	Reverse   bool   `yaml:"reverse"`
}

// Theme names the styles a composed interface draws with.
type Theme struct {
	Name  string `yaml:"name"`
	ASCII bool   `yaml:"ascii"` // seven-bit border glyphs

	Normal  StyleSpec `yaml:"normal"`  // ambient attribute
	Focus   StyleSpec `yaml:"focus"`   // layered over the focused widget
	Border  StyleSpec `yaml:"border"`  // table rules and edges
	Heading StyleSpec `yaml:"heading"` // table heading rows
	Accent  StyleSpec `yaml:"accent"`  // highlights, key hints
}

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		Name:    "slate",
		Normal:  StyleSpec{FG: "#d8dee9", BG: "#14161c"},
		Focus:   StyleSpec{FG: "#14161c", BG: "#ffb74d"},
		Border:  StyleSpec{FG: "#3a3f4c"},
		Heading: StyleSpec{FG: "#ffb74d", Bold: true},
		Accent:  StyleSpec{FG: "#4fc3f7"},
	}
}

// Load reads a theme file over the defaults: styles the file leaves
// out keep their built-in values.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	if _, err := t.Context(); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Style resolves a spec into a canvas style.
func (s StyleSpec) Style() (canvas.Style, error) {
	fg, err := ParseColor(s.FG)
	if err != nil {
		return canvas.Style{}, err
	}
	bg, err := ParseColor(s.BG)
	if err != nil {
		return canvas.Style{}, err
	}

	st := canvas.Style{FG: fg, BG: bg}
	if s.Bold {
		st.Attrs |= canvas.AttrBold
	}
	if s.Dim {
		st.Attrs |= canvas.AttrDim
	}
	if s.Italic {
		st.Attrs |= canvas.AttrItalic
	}
	if s.Underline {
		st.Attrs |= canvas.AttrUnderline
	}
	if s.Reverse {
		st.Attrs |= canvas.AttrReverse
	}
	return st, nil
}

// Context resolves the theme into the render context widgets consume.
func (t *Theme) Context() (widget.Context, error) {
	normal, err := t.Normal.Style()
	if err != nil {
		return widget.Context{}, err
	}
	focus, err := t.Focus.Style()
	if err != nil {
		return widget.Context{}, err
	}
	// Border, heading and accent are handed to components directly,
	// but still need to parse for the theme to be valid.
	for _, spec := range []StyleSpec{t.Border, t.Heading, t.Accent} {
		if _, err := spec.Style(); err != nil {
			return widget.Context{}, err
		}
	}

	ctx := widget.DefaultContext().WithNormal(normal).WithFocus(focus)
	if t.ASCII {
		ctx.Skin = widget.ASCIISkin()
	}
	return ctx, nil
}

// BorderStyle resolves the border spec, falling back to the zero style
// on a spec that no longer parses.
func (t *Theme) BorderStyle() canvas.Style {
	st, err := t.Border.Style()
	if err != nil {
		return canvas.Style{}
	}
	return st
}

// HeadingStyle resolves the heading spec.
func (t *Theme) HeadingStyle() canvas.Style {
	st, err := t.Heading.Style()
	if err != nil {
		return canvas.Style{}
	}
	return st
}

// AccentStyle resolves the accent spec.
func (t *Theme) AccentStyle() canvas.Style {
	st, err := t.Accent.Style()
	if err != nil {
		return canvas.Style{}
	}
	return st
}

// namedColors are the spellings accepted for the basic palette.
var namedColors = map[string]canvas.Color{
	"black":          canvas.ColorBlack,
	"red":            canvas.ColorRed,
	"green":          canvas.ColorGreen,
	"yellow":         canvas.ColorYellow,
	"blue":           canvas.ColorBlue,
	"magenta":        canvas.ColorMagenta,
	"cyan":           canvas.ColorCyan,
	"white":          canvas.ColorWhite,
	"bright-black":   canvas.ColorBrightBlack,
	"bright-red":     canvas.ColorBrightRed,
	"bright-green":   canvas.ColorBrightGreen,
	"bright-yellow":  canvas.ColorBrightYellow,
	"bright-blue":    canvas.ColorBrightBlue,
	"bright-magenta": canvas.ColorBrightMagenta,
	"bright-cyan":    canvas.ColorBrightCyan,
	"bright-white":   canvas.ColorBrightWhite,
}

// ParseColor parses a color as written in a theme file. The empty
// string is the unset color.
func ParseColor(s string) (canvas.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return canvas.ColorNone, nil
	case s == "default":
		return canvas.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		hex, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil || len(s) != 7 {
			return canvas.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		return canvas.Hex(uint32(hex)), nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return canvas.Color256(uint8(n)), nil
	}
	return canvas.Color{}, fmt.Errorf("unknown color %q", s)
}
