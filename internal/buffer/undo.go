package buffer

import (
	"unicode/utf8"

	"github.com/kaku-editor/kaku/internal/history"
	"github.com/kaku-editor/kaku/internal/view"
)

// Undo requests one step back from history and applies its inverse to v:
// deletions are re-inserted, insertions are re-removed, in reverse action
// order. Afterwards it recalculates the tree and settles v's selections.
func (b *Buffer) Undo(v *view.View) bool {
	action, ok := b.Hist.Back()
	if !ok {
		return false
	}
	for i := len(action) - 1; i >= 0; i-- {
		b.applyInverse(v, action[i])
	}
	b.settle(v)
	return true
}

// Redo requests one step forward from history and replays it on v: recorded
// insertions are re-inserted, recorded deletions are re-removed, in forward
// action order. Afterwards it recalculates the tree and settles v's
// selections.
func (b *Buffer) Redo(v *view.View) bool {
	action, ok := b.Hist.Forward()
	if !ok {
		return false
	}
	for _, a := range action {
		b.applyForward(v, a)
	}
	b.settle(v)
	return true
}

func (b *Buffer) applyInverse(v *view.View, a history.Action) {
	switch a.Kind {
	case history.Insertion:
		b.Remove(v, a.Start, utf8.RuneCountInString(a.Text))
	case history.Deletion:
		b.Insert(v, a.DeletedText, a.Start)
	}
}

func (b *Buffer) applyForward(v *view.View, a history.Action) {
	switch a.Kind {
	case history.Insertion:
		b.Insert(v, a.Text, a.Start)
	case history.Deletion:
		b.Remove(v, a.Start, a.Len)
	}
}

// settle re-parses, merges overlapping selections, clamps every selection
// back into range, and scrolls the primary selection into view — the
// cleanup step spec §4.3/§4.8 requires after undo/redo.
func (b *Buffer) settle(v *view.View) {
	b.RecalcTree()
	lenChars := b.LenChars()
	for i := range v.Selections {
		v.Selections[i].MakeValid(lenChars)
	}
	v.MergeOverlappingSelections()
	v.MakeSelectionVisible(b)
}
