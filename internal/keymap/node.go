package keymap

import "github.com/kaku-editor/kaku/internal/key"

// Node is either a Group (more keys expected) or a Commands leaf (a
// terminal hit that executes a list of command strings in order).
type Node interface {
	node()
}

// Group maps the next key in a sequence to a child Node.
type Group struct {
	Children map[key.Event]Node
}

func (*Group) node() {}

func newGroup() *Group {
	return &Group{Children: make(map[key.Event]Node)}
}

// Commands is a terminal trie node: an ordered list of command strings to
// execute when the sequence leading to it is matched exactly.
type Commands struct {
	List []string
}

func (*Commands) node() {}
