package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseKeySequence splits seq on whitespace and parses each token as
// "[Mod-]*Key", per spec.md §4.6. Modifier prefixes are S, C, A, Su, H, M;
// the trailing atom is one of the named key atoms or a single character.
func ParseKeySequence(seq string) ([]Event, error) {
	fields := strings.Fields(seq)
	events := make([]Event, 0, len(fields))
	for _, f := range fields {
		ev, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseToken(tok string) (Event, error) {
	parts := strings.Split(tok, "-")
	atom := parts[len(parts)-1]
	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		m := ModifierFromPrefix(p)
		if m == ModNone {
			return Event{}, fmt.Errorf("key: unknown modifier %q in token %q", p, tok)
		}
		mod = mod.With(m)
	}

	if k := FromName(atom); k != KeyNone || atom == "none" {
		return Event{Key: k, Mod: mod}, nil
	}

	r, size := utf8.DecodeRuneInString(atom)
	if r == utf8.RuneError || size != len(atom) {
		return Event{}, fmt.Errorf("key: invalid key atom %q in token %q", atom, tok)
	}
	return Event{Key: KeyRune, Mod: mod, Rune: r}, nil
}

// SerializeSequence renders events back into the same grammar
// ParseKeySequence accepts, so parsing a serialized sequence round-trips.
func SerializeSequence(events []Event) string {
	tokens := make([]string, len(events))
	for i, e := range events {
		tokens[i] = serializeToken(e)
	}
	return strings.Join(tokens, " ")
}

func serializeToken(e Event) string {
	var atom string
	if e.Key == KeyRune {
		atom = string(e.Rune)
	} else {
		atom = AtomName(e.Key)
	}

	modStr := e.Mod.String()
	if modStr == "" {
		return atom
	}
	return modStr + "-" + atom
}
