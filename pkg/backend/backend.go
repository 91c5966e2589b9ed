// Package backend defines the terminal abstraction the composition
// layer draws through. Implementations exist for real terminals
// (tcell) and for an in-memory simulation screen used by tests.
package backend

import (
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/terminal"
	"github.com/tessera-ui/tessera/pkg/widget"
)

// Backend is the terminal abstraction layer. Implementations own the
// terminal lifecycle, input events, and the cell buffer behind Show.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets the cell at (x, y). The comb parameter carries
	// combining characters and may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style canvas.Style)

	// Show synchronizes the internal buffer to the terminal. This is
	// where actual output happens.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// SetCursorPos sets the cursor position and makes it visible.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available and returns it.
	// Returns nil if the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue, waking a
	// blocked PollEvent. Useful for redraw wakeups and tests.
	PostEvent(ev terminal.Event) error

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full redraw on next Show().
	Sync()
}

// RenderTarget is the subset of Backend that painting needs. Images
// are painted to this interface, not the full Backend.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style canvas.Style)
}

// Paint blits an image onto a target with its top-left cell at origin.
// Continuation cells of wide runes are skipped; the target's own wide
// rune handling fills them.
func Paint(rt RenderTarget, img canvas.Image, origin canvas.Position) {
	for y, row := range img.Rows() {
		for x, c := range row {
			if c.Width == 0 {
				continue
			}
			rt.SetContent(origin.X+x, origin.Y+y, c.Rune, nil, c.Style)
		}
	}
}

// RenderFrame draws one frame of w over the whole backend surface:
// render at the terminal size, paint at the origin, run the
// positioning pass so cached origins match what was painted, then
// place or hide the cursor and flush.
func RenderFrame(b Backend, w widget.Widget, ctx widget.Context) {
	width, height := b.Size()
	img := w.Render(canvas.Size{Width: width, Height: height}, ctx)
	b.Clear()
	Paint(b, img, canvas.Position{})
	w.SetPosition(canvas.Position{})
	if cur, ok := w.CursorPosition(); ok {
		b.SetCursorPos(cur.X, cur.Y)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// SubTarget exposes a rectangular region of a RenderTarget under its
// own coordinate system, clipping writes to the region.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget creates a sub-region of a RenderTarget.
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   w,
		height:  h,
	}
}

// Size returns the sub-target dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent sets content with coordinates relative to the sub-target.
func (s *SubTarget) SetContent(x, y int, mainc rune, comb []rune, style canvas.Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.parent.SetContent(s.offsetX+x, s.offsetY+y, mainc, comb, style)
}
