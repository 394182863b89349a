package key

import "strings"

// Modifier is a bitset over the six modifiers spec.md §4.6/§6 names:
// SHIFT, CONTROL, ALT, SUPER, HYPER, META.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
	ModHyper
	ModMeta
)

// Has reports whether m contains mod.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasSuper() bool { return m.Has(ModSuper) }
func (m Modifier) HasHyper() bool { return m.Has(ModHyper) }
func (m Modifier) HasMeta() bool  { return m.Has(ModMeta) }

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier { return m | mod }

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier { return m &^ mod }

// IsEmpty reports whether no modifiers are set.
func (m Modifier) IsEmpty() bool { return m == ModNone }

// modifierPrefix is the canonical serialization prefix per spec.md §4.6's
// grammar: S|C|A|Su|H|M, in this fixed order.
var modifierPrefix = []struct {
	mod    Modifier
	prefix string
}{
	{ModShift, "S"},
	{ModCtrl, "C"},
	{ModAlt, "A"},
	{ModSuper, "Su"},
	{ModHyper, "H"},
	{ModMeta, "M"},
}

// String serializes m as "S-C-..." in canonical order, e.g. "S-C".
func (m Modifier) String() string {
	var parts []string
	for _, e := range modifierPrefix {
		if m.Has(e.mod) {
			parts = append(parts, e.prefix)
		}
	}
	return strings.Join(parts, "-")
}

var modifierNameMap = map[string]Modifier{
	"s":  ModShift,
	"c":  ModCtrl,
	"a":  ModAlt,
	"su": ModSuper,
	"h":  ModHyper,
	"m":  ModMeta,
}

// ModifierFromPrefix returns the Modifier named by a single grammar prefix
// token (case-insensitive), or ModNone if unrecognized.
func ModifierFromPrefix(prefix string) Modifier {
	if mod, ok := modifierNameMap[strings.ToLower(prefix)]; ok {
		return mod
	}
	return ModNone
}
