package rope

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("New rope should have length 0, got %d", r.Len())
	}
	if !r.IsEmpty() {
		t.Error("New rope should be empty")
	}
	if r.String() != "" {
		t.Errorf("New rope String() should be empty, got %q", r.String())
	}
	if r.LineCount() != 1 {
		t.Errorf("New rope should have 1 line, got %d", r.LineCount())
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single char", "a"},
		{"short string", "hello"},
		{"with newline", "hello\nworld"},
		{"multiple newlines", "a\nb\nc\nd"},
		{"unicode", "hello 世界 🌍"},
		{"long string", strings.Repeat("abcdefghij", 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != len([]rune(tt.input)) {
				t.Errorf("Len() = %d, want %d", r.Len(), len([]rune(tt.input)))
			}
		})
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		offset   int
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "hello", "hello"},
		{"insert empty string", "hello", 3, "", "hello"},
		{"insert unicode", "hello", 5, " 世界", "hello 世界"},
		{"insert at rune boundary", "世界", 1, "!", "世!界"},
		{"insert past end clamps", "hi", 100, "!", "hi!"},
		{"insert before start clamps", "hi", -5, "!", "!hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial)
			r = r.Insert(tt.offset, tt.text)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int
		end      int
		expected string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 11, "hello"},
		{"delete from middle", "hello world", 5, 6, "helloworld"},
		{"delete all", "hello", 0, 5, ""},
		{"delete nothing", "hello", 3, 3, "hello"},
		{"delete beyond end", "hello", 0, 100, ""},
		{"delete unicode range", "世界🌍", 1, 3, "世"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.initial)
			r = r.Delete(tt.start, tt.end)
			if got := r.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	text := "hello world"
	r := FromString(text)

	tests := []struct {
		name     string
		start    int
		end      int
		expected string
	}{
		{"full slice", 0, 11, "hello world"},
		{"first word", 0, 5, "hello"},
		{"last word", 6, 11, "world"},
		{"middle", 3, 8, "lo wo"},
		{"empty slice", 5, 5, ""},
		{"beyond end", 6, 100, "world"},
		{"negative start clamps", -5, 5, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Slice(tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("got %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestLineCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 1},
		{"no newlines", "hello", 1},
		{"one newline", "hello\n", 2},
		{"two lines", "hello\nworld", 2},
		{"three lines", "a\nb\nc", 3},
		{"trailing newline", "a\nb\n", 3},
		{"only newlines", "\n\n\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if got := r.LineCount(); got != tt.expected {
				t.Errorf("LineCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	r := FromString("hello\nworld\nfoo")

	tests := []struct {
		line     int
		expected string
	}{
		{0, "hello"},
		{1, "world"},
		{2, "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := r.LineText(tt.line)
			if got != tt.expected {
				t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.expected)
			}
		})
	}
}

func TestLineStartChar(t *testing.T) {
	r := FromString("hello\nworld\nfoo")

	tests := []struct {
		line     int
		expected int
	}{
		{0, 0},
		{1, 6},
		{2, 12},
		{3, 15}, // past the last line clamps to Len()
	}

	for _, tt := range tests {
		if got := r.LineStartChar(tt.line); got != tt.expected {
			t.Errorf("LineStartChar(%d) = %d, want %d", tt.line, got, tt.expected)
		}
	}
}

func TestLineOf(t *testing.T) {
	r := FromString("hello\nworld\nfoo")

	tests := []struct {
		pos      int
		expected int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{11, 1},
		{12, 2},
		{15, 2},
	}

	for _, tt := range tests {
		if got := r.LineOf(tt.pos); got != tt.expected {
			t.Errorf("LineOf(%d) = %d, want %d", tt.pos, got, tt.expected)
		}
	}
}

func TestImmutability(t *testing.T) {
	original := FromString("hello")
	modified := original.Insert(5, " world")

	if original.String() != "hello" {
		t.Errorf("Original was modified: %q", original.String())
	}
	if modified.String() != "hello world" {
		t.Errorf("Modified is wrong: %q", modified.String())
	}
}

func TestLargeRope(t *testing.T) {
	text := strings.Repeat("abcdefghij\n", 5000)
	r := FromString(text)

	if r.String() != text {
		t.Error("Large rope content mismatch")
	}

	r = r.Insert(25000, "INSERTED")
	if !strings.Contains(r.String(), "INSERTED") {
		t.Error("Insert into large rope failed")
	}

	lineText := r.LineText(2500)
	if len(lineText) == 0 {
		t.Error("Failed to get line from large rope")
	}
}

// Property-based tests

func TestInsertDeleteProperty(t *testing.T) {
	f := func(s string, offset int, insert string) bool {
		runeLen := len([]rune(s))
		if runeLen == 0 {
			offset = 0
		} else {
			offset = offset % (runeLen + 1)
			if offset < 0 {
				offset = -offset
			}
		}

		insertLen := len([]rune(insert))
		r := FromString(s)
		r = r.Insert(offset, insert)
		r = r.Delete(offset, offset+insertLen)
		return r.String() == s
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLenProperty(t *testing.T) {
	f := func(s string) bool {
		r := FromString(s)
		return r.Len() == len([]rune(s))
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLineCountProperty(t *testing.T) {
	f := func(s string) bool {
		r := FromString(s)
		expectedLines := 1
		for _, c := range s {
			if c == '\n' {
				expectedLines++
			}
		}
		return r.LineCount() == expectedLines
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
