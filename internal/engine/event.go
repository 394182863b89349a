package engine

import (
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/view"
)

// EventKind tags which field of Event is populated.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventResize
	EventFocus
	EventPaste
)

// Event is one terminal-level event fed to Engine.Event.
type Event struct {
	Kind    EventKind
	Key     key.Event
	Size    view.Size
	Release bool // true for a key-release event, ignored like Focus/Paste
}
