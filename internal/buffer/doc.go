// Package buffer owns a rope, its history, its incremental syntax tree and
// highlight-color map, and a view-count refcount. It exposes the only
// sanctioned primitives — Insert and Remove — that simultaneously edit text
// and migrate the selections of a supplied view; no other package is allowed
// to mutate a rope directly. Insert and Remove pass no edit descriptor to
// the syntax tree; RecalcTree rebuilds it from the full text.
//
// Char offsets vs byte offsets: every exported primitive here takes and
// returns character offsets, per the contract in spec.md §4.1. The rope is
// rune-indexed too, so those offsets pass straight through to it. Only
// CharToByte / ByteToChar convert, for the byte-offset syntax tree; both are
// O(n) linear scans over the text.
package buffer
