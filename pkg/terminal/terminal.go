// Package terminal defines the input event types routed through
// widgets. Events are delivered one at a time, synchronously; a key
// event is a symbolic key (or literal rune) plus a modifier set.
package terminal

import "strings"

// Event represents a terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent represents a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune // valid when Key == KeyRune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// String renders the event in "ctrl+alt+x" form for diagnostics.
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Ctrl {
		sb.WriteString("ctrl+")
	}
	if e.Alt {
		sb.WriteString("alt+")
	}
	if e.Shift {
		sb.WriteString("shift+")
	}
	if e.Key == KeyRune {
		sb.WriteRune(e.Rune)
	} else {
		sb.WriteString(e.Key.name())
	}
	return sb.String()
}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// InterruptEvent indicates the backend was interrupted and the
// application should wind down.
type InterruptEvent struct{}

func (InterruptEvent) eventMarker() {}

// Key identifies a symbolic key. Control-chord letters arrive as
// KeyRune with Ctrl set rather than as dedicated key values.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // regular character, see KeyEvent.Rune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBackTab // shift-tab as most terminals report it
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyEscape:    "escape",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func (k Key) name() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}
