// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tessera-ui/tessera/pkg/backend"
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/diag"
	"github.com/tessera-ui/tessera/pkg/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen
	rec    *diag.Recorder
}

// New creates a backend over a freshly allocated tcell screen.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend over an existing tcell screen. The
// simulation backend uses this to share the conversion layer.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// SetRecorder attaches a diagnostics recorder for lifecycle events. A
// nil recorder is fine; it discards everything.
func (b *Backend) SetRecorder(rec *diag.Recorder) {
	b.rec = rec
}

// Init initializes the screen.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		b.rec.Error(diag.CategoryBackend, "init_failed", err.Error(), nil)
		return err
	}
	w, h := b.screen.Size()
	b.rec.Info(diag.CategoryBackend, "init", "terminal initialized", map[string]any{
		"width":  w,
		"height": h,
	})
	return nil
}

// Fini restores the terminal state.
func (b *Backend) Fini() {
	b.rec.Info(diag.CategoryBackend, "fini", "terminal restored", nil)
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style canvas.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// SetCursorPos sets the cursor position and makes it visible.
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks until an event is available. Events without a
// translation, such as mouse input, are skipped.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		converted := convertEvent(ev)
		if converted == nil {
			continue
		}
		if resize, ok := converted.(terminal.ResizeEvent); ok {
			b.rec.Debug(diag.CategoryBackend, "resize", "", map[string]any{
				"width":  resize.Width,
				"height": resize.Height,
			})
		}
		return converted
	}
}

// PostEvent injects an event into the queue. Events the screen cannot
// represent are dropped.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep emits an audible bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// convertStyle converts canvas.Style to tcell.Style. Undefined fields
// stay at the terminal defaults.
func convertStyle(s canvas.Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(s.FG)).
		Background(convertColor(s.BG))

	if s.Attrs&canvas.AttrBold != 0 {
		style = style.Bold(true)
	}
	if s.Attrs&canvas.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if s.Attrs&canvas.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if s.Attrs&canvas.AttrDim != 0 {
		style = style.Dim(true)
	}
	if s.Attrs&canvas.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if s.Attrs&canvas.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if s.Attrs&canvas.AttrStrikethrough != 0 {
		style = style.StrikeThrough(true)
	}

	return style
}

// convertColor converts canvas.Color to tcell.Color.
func convertColor(c canvas.Color) tcell.Color {
	switch c.Mode {
	case canvas.ColorMode16, canvas.ColorMode256:
		return tcell.PaletteColor(int(c.Value & 0xFF))
	case canvas.ColorModeRGB:
		return tcell.NewHexColor(int32(c.Value & 0xFFFFFF))
	default:
		return tcell.ColorDefault
	}
}

// convertEvent converts a tcell event to terminal.Event, or nil when
// there is no translation.
func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventInterrupt:
		return terminal.InterruptEvent{}
	default:
		return nil
	}
}

// convertKeyEvent converts one key event. Control-modified letters
// arrive from tcell as dedicated key codes; they are normalized back
// to the letter rune with the Ctrl flag set, so handlers match on one
// shape. Tab, enter, backspace and escape stay named keys even though
// they share codes with control letters.
func convertKeyEvent(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	ke := terminal.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	k := e.Key()
	if named, ok := namedKeys[k]; ok {
		ke.Key = named
		return ke
	}
	if k == tcell.KeyRune {
		ke.Key = terminal.KeyRune
		ke.Rune = e.Rune()
		return ke
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ke.Key = terminal.KeyRune
		ke.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		ke.Ctrl = true
		return ke
	}
	ke.Key = terminal.KeyNone
	return ke
}

// namedKeys maps tcell's named keys to ours. Consulted before the
// control-letter range so tab, enter, backspace and escape keep their
// identities.
var namedKeys = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBackTab,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

// reverseConvertEvent converts terminal.Event to tcell.Event for
// PostEvent.
func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.InterruptEvent:
		return tcell.NewEventInterrupt(nil)
	default:
		return nil
	}
}

var _ backend.Backend = (*Backend)(nil)
