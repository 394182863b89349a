package keymap

import (
	"fmt"
	"sync"

	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/mode"
)

// Keymap holds one trie root per mode.
type Keymap struct {
	mu    sync.RWMutex
	roots map[mode.Name]*Group
}

// New returns an empty keymap.
func New() *Keymap {
	return &Keymap{roots: make(map[mode.Name]*Group)}
}

// Bind walks/creates Group nodes for all but the last key in seq, then
// stores Commands(commands) at the last key. commands must be non-empty.
// Binding a sequence whose prefix is already a Commands leaf, or whose
// terminus is already a Group, is a KeybindingConflict programming error.
func (k *Keymap) Bind(m mode.Name, seq []key.Event, commands []string) error {
	if len(commands) == 0 {
		return fmt.Errorf("keymap: bind with empty command list is a programming error")
	}
	if len(seq) == 0 {
		return fmt.Errorf("keymap: bind with empty key sequence is a programming error")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	root, ok := k.roots[m]
	if !ok {
		root = newGroup()
		k.roots[m] = root
	}

	node := root
	for i, ev := range seq {
		last := i == len(seq)-1

		if !last {
			child, exists := node.Children[ev]
			if !exists {
				g := newGroup()
				node.Children[ev] = g
				node = g
				continue
			}
			g, isGroup := child.(*Group)
			if !isGroup {
				return fmt.Errorf("keymap: KeybindingConflict: prefix already bound to a command list")
			}
			node = g
			continue
		}

		if existing, exists := node.Children[ev]; exists {
			if _, isGroup := existing.(*Group); isGroup {
				return fmt.Errorf("keymap: KeybindingConflict: sequence already has bound continuations")
			}
		}
		node.Children[ev] = &Commands{List: commands}
	}
	return nil
}

// Get looks up seq in mode m's trie, per spec.md §4.6: an exact key lookup
// at each step falling back to the Shift-less form for Char keys, returning
// the last Node touched (Group if more keys are expected, Commands for a
// terminal hit), or (nil, false) on any miss.
func (k *Keymap) Get(m mode.Name, seq []key.Event) (Node, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	root, ok := k.roots[m]
	if !ok {
		return nil, false
	}

	var current Node = root
	for _, ev := range seq {
		group, isGroup := current.(*Group)
		if !isGroup {
			return nil, false
		}

		child, found := group.Children[ev]
		if !found && ev.Mod.HasShift() && ev.Key == key.KeyRune {
			child, found = group.Children[ev.WithoutShift()]
		}
		if !found {
			return nil, false
		}
		current = child
	}
	return current, true
}
