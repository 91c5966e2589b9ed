package canvas

import "testing"

func TestColorConstructors(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		mode  ColorMode
		value uint32
	}{
		{"none", ColorNone, ColorModeNone, 0},
		{"default", ColorDefault, ColorModeDefault, 0},
		{"red", ColorRed, ColorMode16, 1},
		{"bright white", ColorBrightWhite, ColorMode16, 15},
		{"256 index", Color256(200), ColorMode256, 200},
		{"rgb", RGB(0xFF, 0x80, 0x40), ColorModeRGB, 0xFF8040},
		{"hex", Hex(0x112233), ColorModeRGB, 0x112233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.color.Mode != tt.mode {
				t.Errorf("mode = %v, want %v", tt.color.Mode, tt.mode)
			}
			if tt.color.Value != tt.value {
				t.Errorf("value = %d, want %d", tt.color.Value, tt.value)
			}
		})
	}

	if ColorNone.Defined() {
		t.Error("ColorNone should not be defined")
	}
	if !ColorDefault.Defined() {
		t.Error("ColorDefault should be defined")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := Style{}.WithFG(ColorRed).WithBG(ColorBlue).Bold().Underline()
	if s.FG != ColorRed {
		t.Errorf("FG = %v, want red", s.FG)
	}
	if s.BG != ColorBlue {
		t.Errorf("BG = %v, want blue", s.BG)
	}
	if s.Attrs&AttrBold == 0 || s.Attrs&AttrUnderline == 0 {
		t.Errorf("Attrs = %b, want bold|underline", s.Attrs)
	}

	// Builders copy; the original stays untouched.
	base := Style{}
	_ = base.WithFG(ColorGreen)
	if base.FG.Defined() {
		t.Error("WithFG mutated its receiver")
	}
}

func TestStyleOver(t *testing.T) {
	ambient := Style{}.WithFG(ColorWhite).WithBG(ColorBlack)

	t.Run("unset fields fall through", func(t *testing.T) {
		local := Style{}.WithFG(ColorGreen)
		got := local.Over(ambient)
		if got.FG != ColorGreen {
			t.Errorf("FG = %v, want green", got.FG)
		}
		if got.BG != ColorBlack {
			t.Errorf("BG = %v, want ambient black", got.BG)
		}
	})

	t.Run("set fields win", func(t *testing.T) {
		got := Style{}.WithBG(ColorRed).Over(ambient)
		if got.BG != ColorRed {
			t.Errorf("BG = %v, want red", got.BG)
		}
	})

	t.Run("chain resolves highest priority first", func(t *testing.T) {
		override := Style{}.WithFG(ColorYellow)
		local := Style{}.WithFG(ColorGreen).Bold()
		got := override.Over(local).Over(ambient)
		if got.FG != ColorYellow {
			t.Errorf("FG = %v, want override yellow", got.FG)
		}
		if got.Attrs&AttrBold == 0 {
			t.Error("bold from the local style should survive")
		}
		if got.BG != ColorBlack {
			t.Errorf("BG = %v, want ambient black", got.BG)
		}
	})

	t.Run("zero style is transparent", func(t *testing.T) {
		if got := (Style{}).Over(ambient); got != ambient {
			t.Errorf("zero.Over(ambient) = %+v, want ambient", got)
		}
	})
}

func TestNewCellMeasuresWidth(t *testing.T) {
	if c := NewCell('a', Style{}); c.Width != 1 {
		t.Errorf("width of 'a' = %d, want 1", c.Width)
	}
	if c := NewCell('語', Style{}); c.Width != 2 {
		t.Errorf("width of '語' = %d, want 2", c.Width)
	}
}
