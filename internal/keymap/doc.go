// Package keymap implements the per-mode trie from key sequences to either
// a nested group or a terminal command list (spec.md §3/§4.6). Unlike the
// teacher's keymap.Keymap (a flat []Binding list matched linearly), this is
// a real trie keyed by key.Event, because the spec's lookup algorithm
// depends on trie descent and SHIFT-fallback retry at each step.
package keymap
