// Package widget defines the retained-mode widget protocol: a
// capability interface every component implements, a reusable base
// record that carries the protocol's state and hook chains, a generic
// stateful handle for application-defined widgets, focus groups, and
// the small adapters (padding, alignment, text, fills) containers
// compose with.
//
// The model is synchronous and single-threaded. An application drives
// three passes per frame: growth queries, Render into an allotted
// region (which caches each widget's resulting size), and SetPosition
// (which caches absolute coordinates, relying on the sizes the render
// just cached). Key events route through the currently focused path.
package widget

import (
	"github.com/tessera-ui/tessera/pkg/canvas"
	"github.com/tessera-ui/tessera/pkg/terminal"
)

// Widget is the capability interface all components implement.
// Containers hold Widget values, never concrete payload types; a
// Widget value is a pointer to one shared mutable record, so a widget
// held by several containers at once (a table cell and a focus group,
// say) has a single size/position/focus state that all holders
// observe. Copying that state is incorrect.
type Widget interface {
	// Render draws the widget into an image no larger than avail on
	// either axis and records the image size as the widget's cached
	// size. The size contract is on implementations; containers that
	// depend on it check it themselves.
	Render(avail canvas.Size, ctx Context) canvas.Image

	// GrowsHorizontally and GrowsVertically declare intent to consume
	// all available space on an axis. Purely advisory: containers
	// query and honor them, nothing enforces them.
	GrowsHorizontally() bool
	GrowsVertically() bool

	// SetPosition records the widget's absolute origin. Wrappers
	// propagate a suitably translated position to their child.
	// Positions derived from cached sizes are only meaningful after a
	// render has populated those caches.
	SetPosition(p canvas.Position)

	// Size and Position return the cached values from the most recent
	// Render and SetPosition calls.
	Size() canvas.Size
	Position() canvas.Position

	// HandleKey reports whether the event was consumed.
	HandleKey(ev terminal.KeyEvent) bool

	// GainFocus and LoseFocus flip the focused flag and run the
	// corresponding hook chain.
	GainFocus()
	LoseFocus()
	Focused() bool

	// FocusGroup returns the widget's nested focus group, or nil. It
	// lets a container discover and aggregate a child's focus chain.
	FocusGroup() *FocusGroup

	// CursorPosition returns the absolute cursor position a top-level
	// painter should place, if the widget wants one.
	CursorPosition() (canvas.Position, bool)
}

// Base is the record behind every widget: pluggable behavior slots
// plus the cached size, cached position and focused flag. Concrete
// widgets embed Base and configure the slots in their constructors;
// Base keeps the caching and hook-ordering rules in one place.
type Base struct {
	renderFn   func(canvas.Size, Context) canvas.Image
	growHFn    func() bool
	growVFn    func() bool
	positionFn func(canvas.Position)
	keyFn      func(terminal.KeyEvent) bool
	gainFn     func()
	loseFn     func()
	cursorFn   func() (canvas.Position, bool)
	groupFn    func() *FocusGroup

	size    canvas.Size
	pos     canvas.Position
	focused bool
}

// Render runs the render slot and caches the resulting image size.
// Without a render slot the result is the empty image.
func (b *Base) Render(avail canvas.Size, ctx Context) canvas.Image {
	img := canvas.Empty()
	if b.renderFn != nil {
		img = b.renderFn(avail, ctx)
	}
	b.size = img.Size()
	return img
}

// GrowsHorizontally reports the horizontal growth intent; false
// without a growth slot.
func (b *Base) GrowsHorizontally() bool {
	return b.growHFn != nil && b.growHFn()
}

// GrowsVertically reports the vertical growth intent; false without a
// growth slot.
func (b *Base) GrowsVertically() bool {
	return b.growVFn != nil && b.growVFn()
}

// SetPosition caches the absolute origin, then runs the position slot
// so wrappers can pass positions through to their children.
func (b *Base) SetPosition(p canvas.Position) {
	b.pos = p
	if b.positionFn != nil {
		b.positionFn(p)
	}
}

// Size returns the size cached by the most recent Render.
func (b *Base) Size() canvas.Size {
	return b.size
}

// Position returns the origin cached by the most recent SetPosition.
func (b *Base) Position() canvas.Position {
	return b.pos
}

// HandleKey runs the key handler chain; false without handlers.
func (b *Base) HandleKey(ev terminal.KeyEvent) bool {
	if b.keyFn == nil {
		return false
	}
	return b.keyFn(ev)
}

// OnKey installs a key handler ahead of any existing ones: the newest
// handler sees the event first, and earlier handlers run only if it
// returns false. Consumption short-circuits the chain.
func (b *Base) OnKey(fn func(terminal.KeyEvent) bool) {
	prev := b.keyFn
	b.keyFn = func(ev terminal.KeyEvent) bool {
		if fn(ev) {
			return true
		}
		if prev != nil {
			return prev(ev)
		}
		return false
	}
}

// GainFocus sets the focused flag, then runs the gain hooks.
func (b *Base) GainFocus() {
	b.focused = true
	if b.gainFn != nil {
		b.gainFn()
	}
}

// LoseFocus clears the focused flag, then runs the lose hooks.
func (b *Base) LoseFocus() {
	b.focused = false
	if b.loseFn != nil {
		b.loseFn()
	}
}

// OnGainFocus appends a gain hook after any existing ones: earlier
// hooks run first, and every hook always runs. Note the deliberate
// contrast with OnKey, which prepends.
func (b *Base) OnGainFocus(fn func()) {
	prev := b.gainFn
	b.gainFn = func() {
		if prev != nil {
			prev()
		}
		fn()
	}
}

// OnLoseFocus appends a lose hook after any existing ones; ordering
// matches OnGainFocus.
func (b *Base) OnLoseFocus(fn func()) {
	prev := b.loseFn
	b.loseFn = func() {
		if prev != nil {
			prev()
		}
		fn()
	}
}

// Focused reports whether the widget currently holds focus.
func (b *Base) Focused() bool {
	return b.focused
}

// FocusGroup returns the nested focus group, or nil without a slot.
func (b *Base) FocusGroup() *FocusGroup {
	if b.groupFn == nil {
		return nil
	}
	return b.groupFn()
}

// CursorPosition returns the desired cursor position; none without a
// cursor slot.
func (b *Base) CursorPosition() (canvas.Position, bool) {
	if b.cursorFn == nil {
		return canvas.Position{}, false
	}
	return b.cursorFn()
}

// SetRenderFunc installs the render slot.
func (b *Base) SetRenderFunc(fn func(canvas.Size, Context) canvas.Image) {
	b.renderFn = fn
}

// SetGrowthFunc installs dynamic growth slots; either may be nil.
func (b *Base) SetGrowthFunc(horizontal, vertical func() bool) {
	b.growHFn = horizontal
	b.growVFn = vertical
}

// SetGrowth installs constant growth intents.
func (b *Base) SetGrowth(horizontal, vertical bool) {
	b.growHFn = func() bool { return horizontal }
	b.growVFn = func() bool { return vertical }
}

// SetPositionFunc installs the position slot run after caching.
func (b *Base) SetPositionFunc(fn func(canvas.Position)) {
	b.positionFn = fn
}

// SetCursorFunc installs the cursor slot.
func (b *Base) SetCursorFunc(fn func() (canvas.Position, bool)) {
	b.cursorFn = fn
}

// SetFocusGroupFunc installs the nested focus group slot.
func (b *Base) SetFocusGroupFunc(fn func() *FocusGroup) {
	b.groupFn = fn
}

// Handle is a generic stateful widget: a Base plus an owned payload.
// It is the usual shape for application-defined widgets; library
// widgets embed Base directly instead.
type Handle[S any] struct {
	Base
	state S
}

var _ Widget = (*Handle[int])(nil)

// New creates a handle around an initial payload. The zero widget
// renders empty, grows on neither axis and ignores keys until slots
// are configured.
func New[S any](state S) *Handle[S] {
	return &Handle[S]{state: state}
}

// State returns the current payload.
func (h *Handle[S]) State() S {
	return h.state
}

// SetState replaces the payload.
func (h *Handle[S]) SetState(state S) {
	h.state = state
}

// Update applies fn to the payload and stores the result.
func (h *Handle[S]) Update(fn func(S) S) {
	h.state = fn(h.state)
}
