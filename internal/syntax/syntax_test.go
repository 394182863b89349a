package syntax

import "testing"

func TestParseNestsBrackets(t *testing.T) {
	text := "a(b[c]d)e"
	tree := NewParser().Parse(text, nil)

	outer := tree.Root.FirstChild()
	if outer == nil || outer.Start() != 1 || outer.End() != 8 {
		t.Fatalf("outer paren = %+v, want start=1 end=8", outer)
	}
	inner := outer.FirstChild()
	if inner == nil || inner.Start() != 3 || inner.End() != 6 {
		t.Fatalf("inner bracket = %+v, want start=3 end=6", inner)
	}
}

func TestFindSmallestContainingRange(t *testing.T) {
	text := "a(b[c]d)e"
	tree := NewParser().Parse(text, nil)

	found := FindSmallest(tree, 4, 5) // the "c" inside [c]
	if found == nil || found.Start() != 3 || found.End() != 6 {
		t.Fatalf("FindSmallest = %+v, want the [c] node (3,6)", found)
	}
}

func TestColorsCoverWholeText(t *testing.T) {
	text := "a(b)c"
	tree := NewParser().Parse(text, nil)
	colors := Colors(text, tree)
	if len(colors) != len(text) {
		t.Fatalf("len(colors) = %d, want %d", len(colors), len(text))
	}
}
