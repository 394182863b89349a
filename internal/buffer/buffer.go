package buffer

import (
	"sync"
	"unicode/utf8"

	"github.com/kaku-editor/kaku/internal/history"
	"github.com/kaku-editor/kaku/internal/id"
	"github.com/kaku-editor/kaku/internal/rope"
	"github.com/kaku-editor/kaku/internal/syntax"
	"github.com/lucasb-eyer/go-colorful"
)

// BackingKind distinguishes an unsaved scratch buffer from one tied to a
// file on disk.
type BackingKind uint8

const (
	// BackingNone means Save is a no-op.
	BackingNone BackingKind = iota
	// BackingFile means Save writes to Path.
	BackingFile
)

// Backing is a buffer's persistence target: none, or a file path.
type Backing struct {
	Kind BackingKind
	Path string
}

// ScratchName is the name every buffer created by create_buffer carries.
const ScratchName = "*scratch*"

// Buffer owns one rope, its undo history, its syntax tree, and the
// highlight-color sequence derived from that tree.
type Buffer struct {
	ID   id.BufferID
	Name string

	mu        sync.RWMutex
	viewCount int
	text      rope.Rope
	Hist      *history.History
	Backing   Backing
	parser    *syntax.Parser
	tree      *syntax.Tree
	colors    []colorful.Color
}

// New creates an empty "*scratch*" buffer.
func New() *Buffer {
	b := &Buffer{
		ID:     id.NextBufferID(),
		Name:   ScratchName,
		text:   rope.New(),
		Hist:   history.New(),
		parser: syntax.NewParser(),
	}
	b.recalcTreeLocked()
	return b
}

// FromText creates a buffer named name, seeded with text, with the given
// backing (used by Open and by the engine's transient listing buffers;
// the scripting bridge's create_buffer uses New).
func FromText(name, text string, backing Backing) *Buffer {
	b := &Buffer{
		ID:      id.NextBufferID(),
		Name:    name,
		text:    rope.FromString(text),
		Hist:    history.New(),
		Backing: backing,
		parser:  syntax.NewParser(),
	}
	b.recalcTreeLocked()
	return b
}

// ViewCount returns the number of views currently referencing this buffer.
func (b *Buffer) ViewCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.viewCount
}

// IncrementViewCount is called by create_view(buffer_id).
func (b *Buffer) IncrementViewCount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.viewCount++
}

// DecrementViewCount is called by close-buffer; callers drop the buffer from
// the engine's table once this reaches 0.
func (b *Buffer) DecrementViewCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.viewCount > 0 {
		b.viewCount--
	}
	return b.viewCount
}

// Text returns the full buffer contents. Use sparingly for large buffers.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.String()
}

// LenChars returns the character length of the buffer.
func (b *Buffer) LenChars() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lenCharsLocked()
}

func (b *Buffer) lenCharsLocked() int {
	return b.text.Len()
}

// LenBytes returns the byte length of the buffer.
func (b *Buffer) LenBytes() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text.String())
}

// Colors returns the per-byte highlight-color sequence computed by the last
// RecalcTree. len(Colors()) == LenBytes() is the invariant spec §8 checks.
func (b *Buffer) Colors() []colorful.Color {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.colors
}

// charToByte converts a character offset to the corresponding byte offset
// into the buffer's text, clamping to its bounds. O(charIndex); only the
// syntax tree, which is byte-indexed, needs this.
func (b *Buffer) charToByte(charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	return len(b.text.Slice(0, charIndex))
}

// byteToChar converts a byte offset into the buffer's text to the character
// offset of the rune starting at or after it. O(byteOffset).
func (b *Buffer) byteToChar(byteOffset int) int {
	text := b.text.String()
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset >= len(text) {
		return b.text.Len()
	}
	return utf8.RuneCountInString(text[:byteOffset])
}

// Slice returns the text between character offsets [startChar, endChar).
func (b *Buffer) Slice(startChar, endChar int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if endChar < startChar {
		endChar = startChar
	}
	return b.text.Slice(startChar, endChar)
}

// Tree returns the buffer's last-parsed syntax tree, for tree-sitter-style
// navigation commands.
func (b *Buffer) Tree() *syntax.Tree {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tree
}

// CharToByte converts a character offset to the corresponding byte offset
// into the buffer's text (needed only to address the byte-indexed syntax
// tree).
func (b *Buffer) CharToByte(charIndex int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.charToByte(charIndex)
}

// ByteToChar converts a byte offset into the buffer's text to the character
// offset of the rune starting at or after it.
func (b *Buffer) ByteToChar(byteOffset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.byteToChar(byteOffset)
}

// LineOf implements view.TextLocator: the 0-indexed line containing charOffset.
func (b *Buffer) LineOf(charOffset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.LineOf(charOffset)
}

// LineStartChar implements view.TextLocator: the char offset of line's start.
func (b *Buffer) LineStartChar(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.LineStartChar(line)
}

// LineText implements view.TextLocator: the text of line, without its newline.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text.LineText(line)
}
