package buffer

import (
	"testing"

	"github.com/kaku-editor/kaku/internal/selection"
	"github.com/kaku-editor/kaku/internal/view"
)

func newViewOn(b *Buffer) *view.View {
	v := view.New(b.ID)
	b.IncrementViewCount()
	return v
}

func TestInsertShiftsSelections(t *testing.T) {
	b := New()
	v := newViewOn(b)
	b.Insert(v, "one two", 0)
	v.Selections = []selection.Selection{{Start: 0, End: 2}, {Start: 4, End: 6}}

	b.Insert(v, "X", 0)
	b.Insert(v, "X", 5)

	if b.Text() != "Xone Xtwo" {
		t.Fatalf("Text() = %q, want %q", b.Text(), "Xone Xtwo")
	}
	if v.Selections[0].Start != 1 || v.Selections[0].End != 3 {
		t.Fatalf("selection[0] = %+v, want {1,3}", v.Selections[0])
	}
	if v.Selections[1].Start != 6 || v.Selections[1].End != 8 {
		t.Fatalf("selection[1] = %+v, want {6,8}", v.Selections[1])
	}
}

func TestRemoveClampsSelections(t *testing.T) {
	b := New()
	v := newViewOn(b)
	b.Insert(v, "abcdef", 0)
	v.Selections = []selection.Selection{{Start: 2, End: 2}, {Start: 5, End: 5}}

	removed := b.Remove(v, 1, 3) // removes "bcd"
	if removed != "bcd" {
		t.Fatalf("Remove returned %q, want %q", removed, "bcd")
	}
	if b.Text() != "aef" {
		t.Fatalf("Text() = %q, want %q", b.Text(), "aef")
	}
	if v.Selections[0].Start != 1 {
		t.Fatalf("selection inside removed range clamped to %d, want 1", v.Selections[0].Start)
	}
	if v.Selections[1].Start != 2 {
		t.Fatalf("selection past removed range shifted to %d, want 2", v.Selections[1].Start)
	}
}

func TestInsertClampsOutOfRange(t *testing.T) {
	b := New()
	v := newViewOn(b)
	b.Insert(v, "abc", 0)
	b.Insert(v, "!", 100)
	if b.Text() != "abc!" {
		t.Fatalf("Text() = %q, want %q", b.Text(), "abc!")
	}
}

func TestRecalcTreeColorsMatchByteLength(t *testing.T) {
	b := New()
	v := newViewOn(b)
	b.Insert(v, "a(b)c", 0)
	b.RecalcTree()
	if len(b.Colors()) != b.LenBytes() {
		t.Fatalf("len(Colors()) = %d, want %d", len(b.Colors()), b.LenBytes())
	}
}

func TestScratchBufferDefaults(t *testing.T) {
	b := New()
	if b.Name != ScratchName {
		t.Fatalf("Name = %q, want %q", b.Name, ScratchName)
	}
	if b.ViewCount() != 0 {
		t.Fatalf("ViewCount() = %d, want 0", b.ViewCount())
	}
}
