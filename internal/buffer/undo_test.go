package buffer

import (
	"testing"

	"github.com/kaku-editor/kaku/internal/history"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	b := New()
	v := newViewOn(b)

	b.Insert(v, "abc", 0)
	b.Hist.RegisterEdit(history.HistoryAction{history.TextInsertion(0, "abc")})

	if !b.Undo(v) {
		t.Fatal("Undo should succeed")
	}
	if b.Text() != "" {
		t.Fatalf("after Undo, Text() = %q, want empty", b.Text())
	}
	if v.Selections[0].Start != 0 {
		t.Fatalf("selection not clamped to 0 after undo: %+v", v.Selections[0])
	}

	if !b.Redo(v) {
		t.Fatal("Redo should succeed")
	}
	if b.Text() != "abc" {
		t.Fatalf("after Redo, Text() = %q, want %q", b.Text(), "abc")
	}
}

func TestUndoAtStartReturnsFalse(t *testing.T) {
	b := New()
	v := newViewOn(b)
	if b.Undo(v) {
		t.Fatal("Undo on empty history should fail")
	}
}
