// Package rope provides an immutable, rune-indexed text rope: a persistent
// binary tree of leaf chunks used by buffer.Buffer as its text storage.
// Unlike a byte-offset rope, every public offset here is a character (rune)
// index, matching the character-offset domain selections and motions are
// specified in, so buffer.Buffer never has to convert at its edges.
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")  // "hello, world"
//	r = r.Delete(0, 7)    // "world"
//	text := r.String()
//
// Every mutating method returns a new Rope sharing unchanged subtrees with
// the receiver; the receiver itself is never modified, which is what lets a
// Rope snapshot be captured cheaply by undo history.
//
// Leaves are merged back together on join up to maxLeafRunes but the tree is
// never explicitly rebalanced afterward, so pathological edit sequences can
// unbalance it; this trades worst-case guarantees for a much smaller
// implementation, acceptable for the document sizes a terminal editor holds
// in memory.
package rope
