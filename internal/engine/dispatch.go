package engine

import (
	"github.com/kaku-editor/kaku/internal/commandline"
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/keymap"
	"github.com/kaku-editor/kaku/internal/mode"
	"github.com/kaku-editor/kaku/internal/view"
)

// Event handles one terminal-level event per spec §4.9. It returns true
// when the process should exit.
func (e *Engine) Event(ev Event) bool {
	switch ev.Kind {
	case EventFocus, EventPaste:
		return false

	case EventResize:
		e.acquire()
		defer e.release()
		e.ViewportSize = ev.Size
		height := ev.Size.Height - 2
		for _, v := range e.Views {
			v.Resize(view.Size{Width: ev.Size.Width, Height: height})
			v.MakeSelectionVisible(e.BufferFor(v))
		}
		return false

	case EventKey:
		if ev.Release {
			return false
		}
		if ev.Key.IsCtrlQ() {
			return true
		}
		e.acquire()
		defer e.release()
		e.keyEventLocked(ev.Key)
		return e.ShouldQuit
	}
	return false
}

// keyEventLocked implements spec §4.9's key_event state machine. The caller
// must already hold the exclusive borrow.
func (e *Engine) keyEventLocked(k key.Event) {
	if e.CommandLine.Focused {
		outcome := e.CommandLine.Handle(k)
		switch outcome.Kind {
		case commandline.OutcomeExec:
			if err := e.executeCommandLocked(outcome.Command); err != nil {
				e.logError("%v", err)
			}
		case commandline.OutcomeCancel:
			// nothing further; contents already discarded
		}
		return
	}

	if k.IsBareEsc() {
		if len(e.KeyQueue) > 0 {
			e.KeyQueue = nil
		} else if e.Mode != mode.Normal {
			e.Mode = mode.Normal
		}
		return
	}

	candidate := append(append([]key.Event{}, e.KeyQueue...), k)
	node, ok := e.Keybinds.Get(e.Mode, candidate)
	if !ok {
		e.KeyQueue = nil
		if e.Mode == mode.Insert && isPrintable(k) {
			e.insertCharFastPath(k)
		}
		return
	}

	switch n := node.(type) {
	case *keymap.Group:
		e.KeyQueue = candidate
	case *keymap.Commands:
		e.KeyQueue = nil
		for _, cmd := range n.List {
			if err := e.executeCommandLocked(cmd); err != nil {
				e.logError("%v", err)
				break
			}
		}
	}
}

// isPrintable reports whether k is a Char key the Insert-mode fast path
// should insert directly.
func isPrintable(k key.Event) bool {
	return k.Key == key.KeyRune || k.Key == key.KeySpace
}

// ExecuteCommand is the public entry point used by the scripting bridge's
// Editor.exec and by any caller outside an in-progress key event; it
// acquires the exclusive borrow itself.
func (e *Engine) ExecuteCommand(s string) error {
	e.acquire()
	defer e.release()
	return e.executeCommandLocked(s)
}

// executeCommandLocked implements spec §4.9's execute_command, assuming the
// exclusive borrow is already held.
func (e *Engine) executeCommandLocked(s string) error {
	return e.Commands.Execute(s)
}
