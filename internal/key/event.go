package key

// Event is one key press: a Key atom plus its modifier bitset. When Key is
// KeyRune, Rune carries the actual character.
type Event struct {
	Key  Key
	Mod  Modifier
	Rune rune
}

// IsCtrlQ reports whether this event is the globally reserved exit chord.
func (e Event) IsCtrlQ() bool {
	return e.Mod.Has(ModCtrl) && e.Key == KeyRune && (e.Rune == 'q' || e.Rune == 'Q')
}

// IsBareEsc reports whether this event is Escape with no modifiers.
func (e Event) IsBareEsc() bool {
	return e.Key == KeyEscape && e.Mod.IsEmpty()
}

// WithoutShift returns a copy of e with the Shift modifier cleared, used by
// the keybinding engine's SHIFT-fallback retry.
func (e Event) WithoutShift() Event {
	e.Mod = e.Mod.Without(ModShift)
	return e
}
