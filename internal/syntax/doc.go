// Package syntax supplies the "hooks, not grammar" incremental syntax tree
// spec.md §1 asks for: a minimal Tree/Node interface that tree-sitter-{in,
// out,next,prev} can navigate, plus a default Parser/Highlighter pair good
// enough to drive them and to populate Buffer's highlight-color sequence.
// It does not bind to a real tree-sitter grammar; Parser is a concrete
// bracket-nesting parser type, not an interface.
package syntax
