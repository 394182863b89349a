// Package mode implements the tagged input-context identifier spec.md §3
// calls Mode: Normal, Insert, and user-named variants registered by
// enter-mode. Unlike the teacher's Mode interface (lifecycle hooks, cursor
// styles, EditorState), the spec needs nothing beyond "which name selects
// which keybinding trie" — so Mode here is just a named value.
package mode

// Name identifies an input mode by name. The zero value is the empty name,
// which Parse maps to Normal.
type Name string

const (
	Normal Name = "normal"
	Insert Name = "insert"
)

// Parse returns name as a Mode Name; any non-empty string is a valid
// user-named mode, matching enter-mode's "parses the mode" contract.
func Parse(name string) Name {
	if name == "" {
		return Normal
	}
	return Name(name)
}
