package widget

import (
	"fmt"

	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/terminal"
)

// FocusEntry adapts one widget for membership in a FocusGroup. It
// forwards the whole protocol to the child and bridges the group's
// gain/lose notifications into the child's own hooks, so heterogeneous
// children look uniform to the group.
type FocusEntry struct {
	child Widget
}

var _ Widget = (*FocusEntry)(nil)

// Child returns the wrapped widget.
func (e *FocusEntry) Child() Widget {
	return e.child
}

func (e *FocusEntry) Render(avail canvas.Size, ctx Context) canvas.Image {
	return e.child.Render(avail, ctx)
}

func (e *FocusEntry) GrowsHorizontally() bool { return e.child.GrowsHorizontally() }
func (e *FocusEntry) GrowsVertically() bool   { return e.child.GrowsVertically() }

func (e *FocusEntry) SetPosition(p canvas.Position) {
	e.child.SetPosition(p)
}

func (e *FocusEntry) Size() canvas.Size         { return e.child.Size() }
func (e *FocusEntry) Position() canvas.Position { return e.child.Position() }

func (e *FocusEntry) HandleKey(ev terminal.KeyEvent) bool {
	return e.child.HandleKey(ev)
}

func (e *FocusEntry) GainFocus() { e.child.GainFocus() }
func (e *FocusEntry) LoseFocus() { e.child.LoseFocus() }

func (e *FocusEntry) Focused() bool { return e.child.Focused() }

func (e *FocusEntry) FocusGroup() *FocusGroup { return e.child.FocusGroup() }

func (e *FocusEntry) CursorPosition() (canvas.Position, bool) {
	return e.child.CursorPosition()
}

// FocusGroup is an append-only ordered registry of focusable widgets
// with at most one current entry. A group is either empty, with no
// current entry at all, or active with a current index always inside
// [0, Len()). Use the comma-ok Current to distinguish the two.
type FocusGroup struct {
	entries []*FocusEntry
	current int
}

// NewFocusGroup returns an empty group.
func NewFocusGroup() *FocusGroup {
	return &FocusGroup{}
}

// Add appends a widget to the cycle order and returns its entry. The
// first widget added becomes current immediately, but its gain hook is
// not invoked: there was no prior holder to take focus from, and no
// observer yet depends on focus state.
func (g *FocusGroup) Add(w Widget) *FocusEntry {
	e := &FocusEntry{child: w}
	g.entries = append(g.entries, e)
	return e
}

// Len returns the number of entries.
func (g *FocusGroup) Len() int {
	return len(g.entries)
}

// Current returns the current index, or false when the group is empty.
func (g *FocusGroup) Current() (int, bool) {
	if len(g.entries) == 0 {
		return 0, false
	}
	return g.current, true
}

// CurrentEntry returns the current entry, or nil when the group is
// empty.
func (g *FocusGroup) CurrentEntry() *FocusEntry {
	if len(g.entries) == 0 {
		return nil
	}
	return g.entries[g.current]
}

// FocusNext moves focus to the next entry, wrapping at the end. It
// does nothing when the group is empty.
func (g *FocusGroup) FocusNext() {
	if len(g.entries) == 0 {
		return
	}
	g.SetCurrentFocus((g.current + 1) % len(g.entries))
}

// FocusPrevious moves focus to the previous entry, wrapping at the
// start. It does nothing when the group is empty.
func (g *FocusGroup) FocusPrevious() {
	if len(g.entries) == 0 {
		return
	}
	n := len(g.entries)
	g.SetCurrentFocus((g.current - 1 + n) % n)
}

// SetCurrentFocus moves focus to index i. An index outside [0, Len())
// is a programming error and panics. Focusing the already-current
// entry is a no-op with no hook activity; otherwise the old entry's
// lose hooks run, then the new entry's gain hooks, and only then does
// the stored index change, so hooks that query the group mid-move
// observe the index they are moving away from.
func (g *FocusGroup) SetCurrentFocus(i int) {
	if i < 0 || i >= len(g.entries) {
		panic(fmt.Sprintf("widget: focus index %d out of range [0,%d)", i, len(g.entries)))
	}
	if i == g.current {
		return
	}
	g.entries[g.current].LoseFocus()
	g.entries[i].GainFocus()
	g.current = i
}

// HandleKey routes one event through the group: Tab advances focus and
// is always consumed, anything else goes to the current entry. An
// empty group consumes nothing.
func (g *FocusGroup) HandleKey(ev terminal.KeyEvent) bool {
	if len(g.entries) == 0 {
		return false
	}
	if ev.Key == terminal.KeyTab {
		g.FocusNext()
		return true
	}
	return g.entries[g.current].HandleKey(ev)
}
