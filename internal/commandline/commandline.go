package commandline

import (
	"strings"
	"unicode/utf8"

	"github.com/kaku-editor/kaku/internal/key"
)

// OutcomeKind tags what a Handle call produced.
type OutcomeKind uint8

const (
	// OutcomeNone means the key was consumed with no externally visible
	// effect (still editing, or an ignored key).
	OutcomeNone OutcomeKind = iota
	// OutcomeExec means the command-line lost focus and Command holds the
	// text to execute.
	OutcomeExec
	// OutcomeCancel means the command-line lost focus with nothing to run.
	OutcomeCancel
)

// Outcome reports the effect of a single Handle call.
type Outcome struct {
	Kind    OutcomeKind
	Command string
}

// CommandLine is the single-line input state machine for interactive
// command entry.
type CommandLine struct {
	Focused  bool
	Contents string
	Cursor   int // rune index into Contents
}

// Focus clears and focuses the command-line, ready for input.
func (c *CommandLine) Focus() {
	c.Focused = true
	c.Contents = ""
	c.Cursor = 0
}

// Handle applies one key event, returning what effect it had. Handle must
// only be called while c.Focused is true.
func (c *CommandLine) Handle(ev key.Event) Outcome {
	switch ev.Key {
	case key.KeyBackspace:
		if c.Cursor > 0 {
			c.Contents = deleteRuneAt(c.Contents, c.Cursor-1)
			c.Cursor--
		}
		return Outcome{Kind: OutcomeNone}

	case key.KeyEnter:
		contents := c.Contents
		c.unfocusAndReset()
		if strings.TrimSpace(contents) == "" {
			return Outcome{Kind: OutcomeCancel}
		}
		return Outcome{Kind: OutcomeExec, Command: contents}

	case key.KeyLeft:
		if c.Cursor > 0 {
			c.Cursor--
		}
		return Outcome{Kind: OutcomeNone}

	case key.KeyRight:
		if c.Cursor < runeLen(c.Contents) {
			c.Cursor++
		}
		return Outcome{Kind: OutcomeNone}

	case key.KeyHome:
		c.Cursor = 0
		return Outcome{Kind: OutcomeNone}

	case key.KeyEnd:
		c.Cursor = runeLen(c.Contents)
		return Outcome{Kind: OutcomeNone}

	case key.KeyDelete:
		if c.Cursor < runeLen(c.Contents) {
			c.Contents = deleteRuneAt(c.Contents, c.Cursor)
		}
		return Outcome{Kind: OutcomeNone}

	case key.KeyEscape:
		c.unfocusAndReset()
		return Outcome{Kind: OutcomeCancel}

	case key.KeySpace:
		c.insertRune(' ')
		return Outcome{Kind: OutcomeNone}

	case key.KeyRune:
		c.insertRune(ev.Rune)
		return Outcome{Kind: OutcomeNone}

	default:
		return Outcome{Kind: OutcomeNone}
	}
}

func (c *CommandLine) unfocusAndReset() {
	c.Focused = false
	c.Contents = ""
	c.Cursor = 0
}

func (c *CommandLine) insertRune(r rune) {
	runes := []rune(c.Contents)
	runes = append(runes[:c.Cursor], append([]rune{r}, runes[c.Cursor:]...)...)
	c.Contents = string(runes)
	c.Cursor++
}

func deleteRuneAt(s string, idx int) string {
	runes := []rune(s)
	return string(append(runes[:idx], runes[idx+1:]...))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
