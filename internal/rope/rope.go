package rope

import "strings"

// Rope is an immutable, rune-indexed text rope. Every method that would
// mutate the text instead returns a new Rope; the receiver is left
// untouched, so a Rope can be captured by undo history or read concurrently
// without copying its text.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a rope from s, splitting it into leaves no larger than
// maxLeafRunes runes and folding the leaves into a balanced tree.
func FromString(s string) Rope {
	if s == "" {
		return Rope{}
	}
	runes := []rune(s)
	var leaves []*node
	for i := 0; i < len(runes); i += maxLeafRunes {
		end := i + maxLeafRunes
		if end > len(runes) {
			end = len(runes)
		}
		leaves = append(leaves, newLeaf(string(runes[i:end])))
	}
	return Rope{root: foldLeaves(leaves)}
}

// foldLeaves merges leaves pairwise into a balanced binary tree.
func foldLeaves(nodes []*node) *node {
	if len(nodes) == 0 {
		return nil
	}
	for len(nodes) > 1 {
		var next []*node
		for i := 0; i < len(nodes); i += 2 {
			if i+1 < len(nodes) {
				next = append(next, &node{
					left: nodes[i], right: nodes[i+1],
					runes:    nodes[i].runes + nodes[i+1].runes,
					newlines: nodes[i].newlines + nodes[i+1].newlines,
				})
			} else {
				next = append(next, nodes[i])
			}
		}
		nodes = next
	}
	return nodes[0]
}

// Len returns the rope's length in runes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.runes
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.newlines + 1
}

// String returns the rope's full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.runes)
	appendText(r.root, &sb)
	return sb.String()
}

// Slice returns the text in the rune range [start, end), clamped to the
// rope's bounds.
func (r Rope) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if r.root == nil || start >= end {
		return ""
	}
	if end > r.root.runes {
		end = r.root.runes
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sliceText(r.root, 0, start, end, &sb)
	return sb.String()
}

// Insert returns a copy of r with text inserted at rune offset at, clamped
// to [0, Len()].
func (r Rope) Insert(at int, text string) Rope {
	if text == "" {
		return r
	}
	if at < 0 {
		at = 0
	}
	if at > r.Len() {
		at = r.Len()
	}
	left, right := split(r.root, at)
	return Rope{root: join(join(left, FromString(text).root), right)}
}

// Delete returns a copy of r with the rune range [start, end) removed,
// clamped to the rope's bounds.
func (r Rope) Delete(start, end int) Rope {
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return r
	}
	left, _ := split(r.root, start)
	_, right := split(r.root, end)
	return Rope{root: join(left, right)}
}

// LineStartChar returns the rune offset of the start of line (0-indexed),
// or Len() if line is past the last line.
func (r Rope) LineStartChar(line int) int {
	if line <= 0 || r.root == nil {
		return 0
	}
	if off, ok := lineStart(r.root, 0, line); ok {
		return off
	}
	return r.root.runes
}

// LineOf returns the 0-indexed line containing rune offset pos.
func (r Rope) LineOf(pos int) int {
	if r.root == nil {
		return 0
	}
	if pos > r.root.runes {
		pos = r.root.runes
	}
	if pos < 0 {
		pos = 0
	}
	return lineOf(r.root, 0, pos)
}

// LineText returns the text of line (0-indexed), without its trailing
// newline.
func (r Rope) LineText(line int) string {
	start := r.LineStartChar(line)
	end := r.LineStartChar(line + 1)
	return strings.TrimSuffix(r.Slice(start, end), "\n")
}
