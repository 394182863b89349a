package engine

import (
	"github.com/kaku-editor/kaku/internal/buffer"
	"github.com/kaku-editor/kaku/internal/selection"
	"github.com/kaku-editor/kaku/internal/view"
)

// charLeft/charRight/charUp/charDown etc. operate on the active view's selections,
// moving each selection's head and, unless extend is true, collapsing the
// anchor onto it afterward (spec §4.8's "move-"/"extend-" prefix rule).

func (e *Engine) forEachSelection(f func(s *selection.Selection, buf *buffer.Buffer)) {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	for i := range v.Selections {
		f(&v.Selections[i], buf)
	}
}

func collapseIfMove(s *selection.Selection, extend bool) {
	if !extend {
		s.Collapse()
	}
}

func (e *Engine) charLeft(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		if *head > 0 {
			*head--
		}
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) charRight(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		if *head < buf.LenChars() {
			*head++
		}
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

// lineColumn returns (line, column) of charOffset within buf.
func lineColumn(buf *buffer.Buffer, charOffset int) (int, int) {
	line := buf.LineOf(charOffset)
	lineStart := buf.LineStartChar(line)
	return line, charOffset - lineStart
}

// maxColumnOfLine returns the highest valid column on line: for a non-final
// line, its length including the trailing newline, minus 1 (the column of
// the newline itself); on the final line, its full length, per spec §4.8.
func maxColumnOfLine(buf *buffer.Buffer, line, lastLine int) int {
	if line < lastLine {
		return buf.LineStartChar(line+1) - buf.LineStartChar(line) - 1
	}
	return len([]rune(buf.LineText(line)))
}

func (e *Engine) charUp(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		line, col := lineColumn(buf, *head)
		if line == 0 {
			*head = 0
		} else {
			lastLine := buf.LineOf(buf.LenChars())
			target := line - 1
			maxCol := maxColumnOfLine(buf, target, lastLine)
			if col > maxCol {
				col = maxCol
			}
			*head = buf.LineStartChar(target) + col
		}
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) charDown(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		line, col := lineColumn(buf, *head)
		lastLine := buf.LineOf(buf.LenChars())
		if line >= lastLine {
			*head = buf.LenChars()
		} else {
			target := line + 1
			maxCol := maxColumnOfLine(buf, target, lastLine)
			if col > maxCol {
				col = maxCol
			}
			*head = buf.LineStartChar(target) + col
		}
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) gotoStartOfLine(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		line := buf.LineOf(*head)
		*head = buf.LineStartChar(line)
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) gotoEndOfLine(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		head := s.HeadMut()
		line := buf.LineOf(*head)
		lastLine := buf.LineOf(buf.LenChars())
		*head = buf.LineStartChar(line) + maxColumnOfLine(buf, line, lastLine)
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) gotoStart(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		*s.HeadMut() = 0
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

func (e *Engine) gotoEnd(extend bool) error {
	e.forEachSelection(func(s *selection.Selection, buf *buffer.Buffer) {
		*s.HeadMut() = buf.LenChars()
		collapseIfMove(s, extend)
		s.MakeValid(buf.LenChars())
	})
	return nil
}

// orderedIndices returns the indices of v.Selections sorted by Start, the
// order spec §4.8 requires editing primitives to process in.
func orderedIndices(v *view.View) []int {
	idx := make([]int, len(v.Selections))
	for i := range idx {
		idx[i] = i
	}
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && v.Selections[idx[j-1]].Start > v.Selections[idx[j]].Start; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}
