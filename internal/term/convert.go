package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kaku-editor/kaku/internal/key"
)

// convertKeyEvent translates a tcell.EventKey into a key.Event, matching
// the renderer backend's own tcell <-> internal key-type translation.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mod := convertMod(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		if e.Rune() == ' ' {
			return key.Event{Key: key.KeySpace, Mod: mod}
		}
		return key.Event{Key: key.KeyRune, Mod: mod, Rune: e.Rune()}
	}

	// Named keys first: tcell's KeyBackspace, KeyTab and KeyEnter share their
	// codes with KeyCtrlH, KeyCtrlI and KeyCtrlM.
	if k := convertKey(e.Key()); k != key.KeyNone {
		return key.Event{Key: k, Mod: mod}
	}

	if k, ok := convertCtrlLetter(e.Key()); ok {
		return key.Event{Key: key.KeyRune, Mod: mod.With(key.ModCtrl), Rune: k}
	}

	return key.Event{Key: key.KeyNone, Mod: mod}
}

func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBacktab:
		return key.KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}

// convertCtrlLetter maps tcell's KeyCtrlA..KeyCtrlZ range back to the plain
// letter they modify, so the key package can represent them uniformly as
// Ctrl-<rune> instead of a parallel set of named atoms.
func convertCtrlLetter(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + (k - tcell.KeyCtrlA)), true
	}
	return 0, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mod key.Modifier
	if m&tcell.ModShift != 0 {
		mod = mod.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mod = mod.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mod = mod.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mod = mod.With(key.ModMeta)
	}
	return mod
}
