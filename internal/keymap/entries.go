package keymap

import (
	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/mode"
)

// Entry is one resolved binding: a key sequence in a mode mapped to a
// terminal command list, used for listing (e.g. the `binds` command).
type Entry struct {
	Mode     mode.Name
	Sequence []key.Event
	Commands []string
}

// Entries returns every terminal binding across all modes, for display.
func (k *Keymap) Entries() []Entry {
	k.mu.RLock()
	defer k.mu.RUnlock()

	var out []Entry
	for m, root := range k.roots {
		collect(m, root, nil, &out)
	}
	return out
}

func collect(m mode.Name, g *Group, prefix []key.Event, out *[]Entry) {
	for ev, node := range g.Children {
		seq := append(append([]key.Event{}, prefix...), ev)
		switch n := node.(type) {
		case *Group:
			collect(m, n, seq, out)
		case *Commands:
			*out = append(*out, Entry{Mode: m, Sequence: seq, Commands: n.List})
		}
	}
}
