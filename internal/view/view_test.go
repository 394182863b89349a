package view

import (
	"strings"
	"testing"

	"github.com/kaku-editor/kaku/internal/selection"
)

type fakeText struct {
	lines []string
}

func (f fakeText) LineOf(charOffset int) int {
	total := 0
	for i, l := range f.lines {
		n := len([]rune(l)) + 1
		if charOffset < total+n {
			return i
		}
		total += n
	}
	return len(f.lines) - 1
}

func (f fakeText) LineStartChar(line int) int {
	total := 0
	for i := 0; i < line; i++ {
		total += len([]rune(f.lines[i])) + 1
	}
	return total
}

func (f fakeText) LineText(line int) string {
	return f.lines[line]
}

func (f fakeText) LenChars() int {
	return len([]rune(strings.Join(f.lines, "\n")))
}

func TestMakeSelectionVisibleScrollsDown(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	text := fakeText{lines: lines}

	v := New(1)
	v.Viewport = Size{Width: 80, Height: 5}
	v.Selections[0] = selection.AtOffset(v.ID, text.LineStartChar(10))

	v.MakeSelectionVisible(text)

	if v.VScroll != 10-5+1 {
		t.Fatalf("VScroll = %d, want %d", v.VScroll, 10-5+1)
	}
}

func TestMakeSelectionVisibleScrollsUp(t *testing.T) {
	text := fakeText{lines: []string{"a", "b", "c"}}
	v := New(1)
	v.Viewport = Size{Width: 80, Height: 2}
	v.VScroll = 5
	v.Selections[0] = selection.AtOffset(v.ID, 0)

	v.MakeSelectionVisible(text)

	if v.VScroll != 0 {
		t.Fatalf("VScroll = %d, want 0", v.VScroll)
	}
}

func TestMergeOverlappingSelections(t *testing.T) {
	v := New(1)
	v.Selections = []selection.Selection{
		{Start: 10, End: 12},
		{Start: 0, End: 3},
		{Start: 3, End: 6},
	}
	v.MergeOverlappingSelections()

	if len(v.Selections) != 2 {
		t.Fatalf("got %d selections, want 2: %+v", len(v.Selections), v.Selections)
	}
	if v.Selections[0].Start != 0 || v.Selections[0].End != 6 {
		t.Fatalf("merged cluster = %+v, want {0,6}", v.Selections[0])
	}
}

func TestMergeNoOverlapIsNoop(t *testing.T) {
	v := New(1)
	v.Selections = []selection.Selection{
		{Start: 0, End: 1},
		{Start: 5, End: 6},
	}
	v.MergeOverlappingSelections()
	if len(v.Selections) != 2 {
		t.Fatalf("expected selections unchanged, got %+v", v.Selections)
	}
}
