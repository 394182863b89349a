package buffer

import (
	"unicode/utf8"

	"github.com/kaku-editor/kaku/internal/syntax"
	"github.com/kaku-editor/kaku/internal/view"
)

// Insert inserts text at charIndex (clamped to [0, LenChars]) into the
// buffer's rope and shifts every selection on v whose Start or End is at or
// past charIndex by the number of runes inserted. It does not re-parse; call
// RecalcTree when a command is done editing. This is one of the two
// sanctioned mutation primitives (spec §9, "selection-text co-mutation").
func (b *Buffer) Insert(v *view.View, text string, charIndex int) {
	if text == "" {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	lenChars := b.lenCharsLocked()
	if charIndex < 0 {
		charIndex = 0
	}
	if charIndex > lenChars {
		charIndex = lenChars
	}

	b.text = b.text.Insert(charIndex, text)

	charLen := utf8.RuneCountInString(text)
	for i := range v.Selections {
		s := &v.Selections[i]
		if s.Start >= charIndex {
			s.Start += charLen
		}
		if s.End >= charIndex {
			s.End += charLen
		}
	}
}

// Remove deletes the len characters starting at charIndex (clamped) from the
// buffer's rope, returning the removed text, and shifts every selection on v
// whose endpoints lie past the removed region left by len characters,
// clamping so no endpoint falls below charIndex.
func (b *Buffer) Remove(v *view.View, charIndex, length int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lenChars := b.lenCharsLocked()
	if charIndex < 0 {
		charIndex = 0
	}
	if charIndex > lenChars {
		charIndex = lenChars
	}
	if length < 0 {
		length = 0
	}
	if charIndex+length > lenChars {
		length = lenChars - charIndex
	}
	if length == 0 {
		return ""
	}

	removed := b.text.Slice(charIndex, charIndex+length)
	b.text = b.text.Delete(charIndex, charIndex+length)

	shift := func(field int) int {
		switch {
		case field >= charIndex+length:
			return field - length
		case field > charIndex:
			return charIndex
		default:
			return field
		}
	}
	for i := range v.Selections {
		s := &v.Selections[i]
		s.Start = shift(s.Start)
		s.End = shift(s.End)
	}

	return removed
}

// RecalcTree re-parses the current text (passing the previous tree to
// Parser.Parse, which the default parser ignores) and rebuilds the
// highlight-color map.
func (b *Buffer) RecalcTree() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recalcTreeLocked()
}

func (b *Buffer) recalcTreeLocked() {
	text := b.text.String()
	b.tree = b.parser.Parse(text, b.tree)
	b.colors = syntax.Colors(text, b.tree)
}
