package engine

import (
	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/history"
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/killring"
	"github.com/kaku-editor/kaku/internal/view"
)

// cmdInsert implements spec §4.8 insert <text>: for each selection ordered
// by start, insert text at start; record insertions as one HistoryAction.
func (e *Engine) cmdInsert(text string) error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	var group history.HistoryAction
	for _, idx := range orderedIndices(v) {
		start := v.Selections[idx].Start
		buf.Insert(v, text, start)
		group = append(group, history.TextInsertion(start, text))
	}
	buf.Hist.RegisterEdit(group)
	buf.RecalcTree()
	return nil
}

// insertCharFastPath is the Insert-mode degenerate path spec §4.9 step 4
// describes: a single unbound printable Char is inserted directly.
func (e *Engine) insertCharFastPath(k key.Event) {
	ch := " "
	if k.Key == key.KeyRune {
		ch = string(k.Rune)
	}
	_ = e.cmdInsert(ch)
}

// cmdDelete implements spec §4.8 delete.
func (e *Engine) cmdDelete() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	var group history.HistoryAction
	var texts []string
	for _, idx := range orderedIndices(v) {
		s := v.Selections[idx]
		length := s.End - s.Start + 1
		removed := buf.Remove(v, s.Start, length)
		group = append(group, history.TextDeletion(s.Start, removed, length))
		texts = append(texts, removed)
	}
	buf.Hist.RegisterEdit(group)
	buf.RecalcTree()
	e.KillRing.Push(killring.Entry{Text: texts})
	v.MergeOverlappingSelections()
	return nil
}

// cmdBackspace implements spec §4.8 backspace.
func (e *Engine) cmdBackspace() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	var group history.HistoryAction
	for _, idx := range orderedIndices(v) {
		s := v.Selections[idx]
		if s.Start <= 0 {
			continue
		}
		removed := buf.Remove(v, s.Start-1, 1)
		group = append(group, history.TextDeletion(s.Start-1, removed, 1))
	}
	if len(group) > 0 {
		buf.Hist.RegisterEdit(group)
	}
	buf.RecalcTree()
	v.MergeOverlappingSelections()
	return nil
}

// cmdCopyKillRing implements spec §4.8 copy-kill-ring.
func (e *Engine) cmdCopyKillRing() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	lenChars := buf.LenChars()

	texts := make([]string, 0, len(v.Selections))
	for _, idx := range orderedIndices(v) {
		s := v.Selections[idx]
		end := s.End + 1
		if end > lenChars {
			end = lenChars
		}
		texts = append(texts, buf.Slice(s.Start, end))
	}
	e.KillRing.Push(killring.Entry{Text: texts})
	return nil
}

// cmdPasteKillRing implements spec §4.8 paste-kill-ring <before: bool>.
func (e *Engine) cmdPasteKillRing(before bool) error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	texts, ok := e.KillRing.GetForCursorCount(len(v.Selections))
	if !ok {
		return nil
	}

	order := orderedIndices(v)
	var group history.HistoryAction
	for pos, idx := range order {
		s := v.Selections[idx]
		text := texts[pos]

		var at int
		if before {
			at = s.Start
		} else {
			at = s.End + 1
			if lenChars := buf.LenChars(); at > lenChars {
				at = lenChars
			}
		}
		buf.Insert(v, text, at)
		group = append(group, history.TextInsertion(at, text))
	}
	buf.Hist.RegisterEdit(group)
	buf.RecalcTree()
	return nil
}

// cmdUndo implements spec §4.8 undo, then re-validates every other view on
// the same buffer per spec §4.8's closing sentence.
func (e *Engine) cmdUndo() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	if buf.Undo(v) {
		e.settleOtherViews(buf, v)
	}
	return nil
}

// cmdRedo implements spec §4.8 redo.
func (e *Engine) cmdRedo() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	if buf.Redo(v) {
		e.settleOtherViews(buf, v)
	}
	return nil
}

// settleOtherViews re-validates and scrolls every view on buf other than
// except, since Buffer.Undo/Redo only migrates selections on the view it
// was called with.
func (e *Engine) settleOtherViews(buf *buffer.Buffer, except *view.View) {
	lenChars := buf.LenChars()
	for _, ov := range e.Views {
		if ov == except || ov.Buffer != buf.ID {
			continue
		}
		for i := range ov.Selections {
			ov.Selections[i].MakeValid(lenChars)
		}
		ov.MergeOverlappingSelections()
		ov.MakeSelectionVisible(buf)
	}
}
