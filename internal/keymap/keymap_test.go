package keymap

import (
	"testing"

	"github.com/kaku-editor/kaku/internal/key"
	"github.com/kaku-editor/kaku/internal/mode"
)

func mustParse(t *testing.T, seq string) []key.Event {
	t.Helper()
	events, err := key.ParseKeySequence(seq)
	if err != nil {
		t.Fatal(err)
	}
	return events
}

func TestBindAndGetCommands(t *testing.T) {
	k := New()
	if err := k.Bind(mode.Normal, mustParse(t, "g g"), []string{"goto-start"}); err != nil {
		t.Fatal(err)
	}

	node, ok := k.Get(mode.Normal, mustParse(t, "g"))
	if !ok {
		t.Fatal("expected a Group hit for the prefix")
	}
	if _, isGroup := node.(*Group); !isGroup {
		t.Fatalf("node = %T, want *Group", node)
	}

	node, ok = k.Get(mode.Normal, mustParse(t, "g g"))
	if !ok {
		t.Fatal("expected a Commands hit for the full sequence")
	}
	cmds, isCommands := node.(*Commands)
	if !isCommands || cmds.List[0] != "goto-start" {
		t.Fatalf("node = %+v", node)
	}
}

func TestGetUnboundSequenceMisses(t *testing.T) {
	k := New()
	k.Bind(mode.Normal, mustParse(t, "g g"), []string{"goto-start"})

	if _, ok := k.Get(mode.Normal, mustParse(t, "g h")); ok {
		t.Fatal("expected a miss for an unbound continuation")
	}
}

func TestShiftFallback(t *testing.T) {
	k := New()
	k.Bind(mode.Normal, []key.Event{{Key: key.KeyRune, Rune: 'g'}}, []string{"goto-start"})

	shifted := key.Event{Key: key.KeyRune, Rune: 'g', Mod: key.ModShift}
	node, ok := k.Get(mode.Normal, []key.Event{shifted})
	if !ok {
		t.Fatal("expected SHIFT-fallback to find the unshifted binding")
	}
	if _, isCommands := node.(*Commands); !isCommands {
		t.Fatalf("node = %T, want *Commands", node)
	}
}

func TestBindPrefixConflict(t *testing.T) {
	k := New()
	if err := k.Bind(mode.Normal, mustParse(t, "g"), []string{"goto-start"}); err != nil {
		t.Fatal(err)
	}
	if err := k.Bind(mode.Normal, mustParse(t, "g g"), []string{"goto-start"}); err == nil {
		t.Fatal("expected KeybindingConflict when prefix is already a Commands leaf")
	}
}

func TestBindEmptyCommandsIsError(t *testing.T) {
	k := New()
	if err := k.Bind(mode.Normal, mustParse(t, "g"), nil); err == nil {
		t.Fatal("expected error binding an empty command list")
	}
}
