// Package sim provides an in-memory backend for tests, built on
// tcell's simulation screen.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/tessera-ui/tessera/pkg/backend"
	"github.com/tessera-ui/tessera/pkg/backend/tcell"
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/terminal"
)

// Backend is a testable backend over tcell's simulation screen. It
// shares the real tcell conversion layer, so what tests observe is
// what a terminal would get.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	width  int
	height int
	mu     sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the screen and applies the requested size; the
// simulation screen resets to its default size during Init.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.screen.SetSize(s.width, s.height)
	return nil
}

// Resize changes the simulation screen size.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectKey injects a key event into the simulation's input stream.
// Keys without a terminal representation are dropped.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	tk, ok := injectKeys[key]
	if !ok {
		return
	}
	s.screen.InjectKey(tk, r, tcellv2.ModNone)
}

// InjectRune injects a regular character keypress.
func (s *Backend) InjectRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectString injects a string as a sequence of key events.
func (s *Backend) InjectString(str string) {
	for _, r := range str {
		s.InjectRune(r)
	}
}

// InjectCtrl injects a control-modified letter, the way a terminal
// delivers one.
func (s *Backend) InjectCtrl(r rune) {
	if r < 'a' || r > 'z' {
		return
	}
	s.screen.InjectKey(tcellv2.KeyCtrlA+tcellv2.Key(r-'a'), r, tcellv2.ModCtrl)
}

// InjectResize resizes the screen and posts the matching event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture captures the current screen content as a string, one line
// per screen row.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	var lines []string

	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, style canvas.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, tcStyle, _ := s.screen.GetContent(x, y)
	return m, convertTcellStyle(tcStyle)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []string
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, _, _, _ := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText searches the screen for text and returns its position, or
// (-1, -1) when absent.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// Cursor returns the cursor position and whether it is visible.
func (s *Backend) Cursor() (x, y int, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.GetCursor()
}

// injectKeys maps terminal keys to the tcell codes the simulation
// screen accepts.
var injectKeys = map[terminal.Key]tcellv2.Key{
	terminal.KeyRune:      tcellv2.KeyRune,
	terminal.KeyEnter:     tcellv2.KeyEnter,
	terminal.KeyBackspace: tcellv2.KeyBackspace2,
	terminal.KeyTab:       tcellv2.KeyTab,
	terminal.KeyBackTab:   tcellv2.KeyBacktab,
	terminal.KeyEscape:    tcellv2.KeyEscape,
	terminal.KeyUp:        tcellv2.KeyUp,
	terminal.KeyDown:      tcellv2.KeyDown,
	terminal.KeyLeft:      tcellv2.KeyLeft,
	terminal.KeyRight:     tcellv2.KeyRight,
	terminal.KeyHome:      tcellv2.KeyHome,
	terminal.KeyEnd:       tcellv2.KeyEnd,
	terminal.KeyPageUp:    tcellv2.KeyPgUp,
	terminal.KeyPageDown:  tcellv2.KeyPgDn,
	terminal.KeyDelete:    tcellv2.KeyDelete,
	terminal.KeyInsert:    tcellv2.KeyInsert,
	terminal.KeyF1:        tcellv2.KeyF1,
	terminal.KeyF2:        tcellv2.KeyF2,
	terminal.KeyF3:        tcellv2.KeyF3,
	terminal.KeyF4:        tcellv2.KeyF4,
	terminal.KeyF5:        tcellv2.KeyF5,
	terminal.KeyF6:        tcellv2.KeyF6,
	terminal.KeyF7:        tcellv2.KeyF7,
	terminal.KeyF8:        tcellv2.KeyF8,
	terminal.KeyF9:        tcellv2.KeyF9,
	terminal.KeyF10:       tcellv2.KeyF10,
	terminal.KeyF11:       tcellv2.KeyF11,
	terminal.KeyF12:       tcellv2.KeyF12,
}

// convertTcellStyle converts tcell's style back to canvas.Style for
// assertions.
func convertTcellStyle(ts tcellv2.Style) canvas.Style {
	fg, bg, attrs := ts.Decompose()
	style := canvas.Style{
		FG: convertTcellColor(fg),
		BG: convertTcellColor(bg),
	}

	if attrs&tcellv2.AttrBold != 0 {
		style.Attrs |= canvas.AttrBold
	}
	if attrs&tcellv2.AttrItalic != 0 {
		style.Attrs |= canvas.AttrItalic
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style.Attrs |= canvas.AttrUnderline
	}
	if attrs&tcellv2.AttrDim != 0 {
		style.Attrs |= canvas.AttrDim
	}
	if attrs&tcellv2.AttrBlink != 0 {
		style.Attrs |= canvas.AttrBlink
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style.Attrs |= canvas.AttrReverse
	}
	if attrs&tcellv2.AttrStrikeThrough != 0 {
		style.Attrs |= canvas.AttrStrikethrough
	}

	return style
}

// convertTcellColor converts tcell colors back to canvas colors.
func convertTcellColor(tc tcellv2.Color) canvas.Color {
	if tc == tcellv2.ColorDefault {
		return canvas.ColorDefault
	}
	if tc&tcellv2.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return canvas.RGB(uint8(r), uint8(g), uint8(b))
	}
	index := uint32(tc & 0xFF)
	if index < 16 {
		return canvas.Color{Mode: canvas.ColorMode16, Value: index}
	}
	return canvas.Color256(uint8(index))
}

var _ backend.Backend = (*Backend)(nil)
