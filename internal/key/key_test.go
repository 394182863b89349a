package key

import "testing"

func TestParseKeySequenceSimpleChar(t *testing.T) {
	events, err := ParseKeySequence("g g")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].Key != KeyRune || events[0].Rune != 'g' {
		t.Fatalf("events = %+v", events)
	}
}

func TestParseKeySequenceModifiers(t *testing.T) {
	events, err := ParseKeySequence("C-S-g C-enter")
	if err != nil {
		t.Fatal(err)
	}
	if !events[0].Mod.HasCtrl() || !events[0].Mod.HasShift() || events[0].Rune != 'g' {
		t.Fatalf("events[0] = %+v", events[0])
	}
	if events[1].Key != KeyEnter || !events[1].Mod.HasCtrl() {
		t.Fatalf("events[1] = %+v", events[1])
	}
}

func TestParseKeySequenceNamedAtoms(t *testing.T) {
	events, err := ParseKeySequence("spc bspc backtab tab")
	if err != nil {
		t.Fatal(err)
	}
	want := []Key{KeySpace, KeyBackspace, KeyBacktab, KeyTab}
	for i, k := range want {
		if events[i].Key != k {
			t.Fatalf("events[%d].Key = %v, want %v", i, events[i].Key, k)
		}
	}
}

func TestParseKeySequenceUnknownModifierErrors(t *testing.T) {
	if _, err := ParseKeySequence("X-g"); err == nil {
		t.Fatal("expected error for unknown modifier prefix")
	}
}

func TestSerializeRoundTrips(t *testing.T) {
	original := "C-S-g Su-enter h"
	events, err := ParseKeySequence(original)
	if err != nil {
		t.Fatal(err)
	}
	serialized := SerializeSequence(events)
	reparsed, err := ParseKeySequence(serialized)
	if err != nil {
		t.Fatal(err)
	}
	if len(reparsed) != len(events) {
		t.Fatalf("round trip length mismatch: %d vs %d", len(reparsed), len(events))
	}
	for i := range events {
		if events[i] != reparsed[i] {
			t.Fatalf("event %d mismatch: %+v vs %+v", i, events[i], reparsed[i])
		}
	}
}

func TestIsCtrlQ(t *testing.T) {
	e := Event{Key: KeyRune, Mod: ModCtrl, Rune: 'q'}
	if !e.IsCtrlQ() {
		t.Fatal("expected IsCtrlQ true")
	}
}
