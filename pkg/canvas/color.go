package canvas

// ColorMode defines how a color is represented.
type ColorMode uint8

const (
	// ColorModeNone means the color is unset and inherits from the
	// surrounding context.
	ColorModeNone ColorMode = iota
	// ColorModeDefault uses the terminal's default color.
	ColorModeDefault
	// ColorMode16 uses the basic 16 ANSI colors (0-15).
	ColorMode16
	// ColorMode256 uses the extended 256 color palette.
	ColorMode256
	// ColorModeRGB uses 24-bit true color.
	ColorModeRGB
)

// Color represents a terminal color.
type Color struct {
	Mode  ColorMode
	Value uint32 // for 16/256: color index, for RGB: 0xRRGGBB
}

// Pre-defined colors for convenience.
var (
	ColorNone    = Color{Mode: ColorModeNone}
	ColorDefault = Color{Mode: ColorModeDefault}

	// Basic 16 colors
	ColorBlack   = Color{Mode: ColorMode16, Value: 0}
	ColorRed     = Color{Mode: ColorMode16, Value: 1}
	ColorGreen   = Color{Mode: ColorMode16, Value: 2}
	ColorYellow  = Color{Mode: ColorMode16, Value: 3}
	ColorBlue    = Color{Mode: ColorMode16, Value: 4}
	ColorMagenta = Color{Mode: ColorMode16, Value: 5}
	ColorCyan    = Color{Mode: ColorMode16, Value: 6}
	ColorWhite   = Color{Mode: ColorMode16, Value: 7}

	// Bright variants
	ColorBrightBlack   = Color{Mode: ColorMode16, Value: 8}
	ColorBrightRed     = Color{Mode: ColorMode16, Value: 9}
	ColorBrightGreen   = Color{Mode: ColorMode16, Value: 10}
	ColorBrightYellow  = Color{Mode: ColorMode16, Value: 11}
	ColorBrightBlue    = Color{Mode: ColorMode16, Value: 12}
	ColorBrightMagenta = Color{Mode: ColorMode16, Value: 13}
	ColorBrightCyan    = Color{Mode: ColorMode16, Value: 14}
	ColorBrightWhite   = Color{Mode: ColorMode16, Value: 15}
)

// Color256 creates a 256-palette color (0-255).
func Color256(index uint8) Color {
	return Color{Mode: ColorMode256, Value: uint32(index)}
}

// RGB creates a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, Value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Hex creates a color from a hex value (0xRRGGBB).
func Hex(hex uint32) Color {
	return Color{Mode: ColorModeRGB, Value: hex}
}

// Defined reports whether the color carries a value rather than
// inheriting one.
func (c Color) Defined() bool {
	return c.Mode != ColorModeNone
}
