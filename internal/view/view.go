// Package view implements the windowed projection of a buffer: scroll
// position, viewport size, and the view's own ordered, non-empty selection
// list. View never imports buffer directly (buffer imports view, to let
// Buffer.Insert/Remove mutate a view's selections without a cycle); instead
// it talks to whatever buffer owns it through the small TextLocator
// interface below.
package view

import (
	"sort"

	"github.com/kaku-editor/kaku/internal/id"
	"github.com/kaku-editor/kaku/internal/selection"
	"github.com/rivo/uniseg"
)

// Size is a viewport size in terminal cells.
type Size struct {
	Width  int
	Height int
}

// TextLocator is the slice of Buffer that View needs for scroll-following
// and column math, kept as an interface so view has no import of buffer.
type TextLocator interface {
	LineOf(charOffset int) int
	LineStartChar(line int) int
	LineText(line int) string
	LenChars() int
}

// View is a windowed projection of one buffer.
type View struct {
	ID       id.ViewID
	Buffer   id.BufferID
	VScroll  int
	HScroll  int
	Viewport Size

	// Selections is kept non-empty at all times; New seeds it with one
	// zero-width selection.
	Selections []selection.Selection
}

// New creates a view on buffer with a single zero-width selection at 0.
func New(buf id.BufferID) *View {
	v := &View{
		ID:     id.NextViewID(),
		Buffer: buf,
	}
	v.Selections = []selection.Selection{selection.AtOffset(v.ID, 0)}
	return v
}

// Resize replaces the stored viewport size.
func (v *View) Resize(s Size) {
	v.Viewport = s
}

// PrimarySelection returns the first (primary) selection.
func (v *View) PrimarySelection() selection.Selection {
	return v.Selections[0]
}

// MakeSelectionVisible adjusts scroll so the primary selection's head is
// within the viewport, per spec §4.4.
func (v *View) MakeSelectionVisible(text TextLocator) {
	if len(v.Selections) == 0 || v.Viewport.Height <= 0 {
		return
	}
	head := v.Selections[0].Head()
	line := text.LineOf(head)

	if line < v.VScroll {
		v.VScroll = line
	}
	if line >= v.VScroll+v.Viewport.Height {
		v.VScroll = line - v.Viewport.Height + 1
	}
	if v.VScroll < 0 {
		v.VScroll = 0
	}

	if v.Viewport.Width <= 0 {
		return
	}
	lineStart := text.LineStartChar(line)
	col := columnOf(text.LineText(line), head-lineStart)
	if col < v.HScroll {
		v.HScroll = col
	}
	if col >= v.HScroll+v.Viewport.Width {
		v.HScroll = col - v.Viewport.Width + 1
	}
	if v.HScroll < 0 {
		v.HScroll = 0
	}
}

// columnOf measures the display-column width of the first charIndex runes of
// line, accounting for multi-rune grapheme clusters via uniseg.
func columnOf(line string, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	col := 0
	runeCount := 0
	state := -1
	remaining := line
	for len(remaining) > 0 && runeCount < charIndex {
		cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		col += width
		runeCount += len([]rune(cluster))
		remaining = rest
		state = newState
	}
	return col
}

// MergeOverlappingSelections coalesces selections whose ranges intersect or
// touch, keeping one representative per cluster. The surviving selection in
// each cluster is whichever was ordered first among the merged-in group,
// with direction inherited from it (the "primary" of that cluster).
func (v *View) MergeOverlappingSelections() {
	if len(v.Selections) < 2 {
		return
	}
	ordered := make([]selection.Selection, len(v.Selections))
	copy(ordered, v.Selections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	merged := make([]selection.Selection, 0, len(ordered))
	current := ordered[0]
	for _, s := range ordered[1:] {
		if current.Overlaps(s) {
			current = current.Merge(s)
			continue
		}
		merged = append(merged, current)
		current = s
	}
	merged = append(merged, current)
	v.Selections = merged
}
