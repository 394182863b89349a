package engine

import "github.com/kaku-editor/kaku/internal/selection"

// cmdSplitSelection implements the split-selection supplement: each
// selection spanning more than one line is replaced by one selection per
// line it covers, never reducing the total selection count.
func (e *Engine) cmdSplitSelection() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)

	var out []selection.Selection
	for _, s := range v.Selections {
		firstLine := buf.LineOf(s.Start)
		lastLine := buf.LineOf(s.End)
		if firstLine == lastLine {
			out = append(out, s)
			continue
		}
		for line := firstLine; line <= lastLine; line++ {
			lineStart := buf.LineStartChar(line)
			lineEnd := lineStart + maxColumnOfLine(buf, line, buf.LineOf(buf.LenChars()))
			start := s.Start
			if start < lineStart {
				start = lineStart
			}
			end := s.End
			if end > lineEnd {
				end = lineEnd
			}
			if start > end {
				start = lineStart
				end = lineStart
			}
			out = append(out, selection.Selection{View: v.ID, Start: start, End: end, Dir: selection.Forward})
		}
	}
	v.Selections = out
	return nil
}

// cmdAddSelectionBelow implements the add-selection-below supplement: adds
// one new selection per existing selection, positioned at the same column
// on the following line (clamped to that line's length); a selection whose
// head is already on the buffer's last line gets no new selection.
func (e *Engine) cmdAddSelectionBelow() error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	lastLine := buf.LineOf(buf.LenChars())

	existing := append([]selection.Selection{}, v.Selections...)
	for _, s := range existing {
		line, col := lineColumn(buf, s.Head())
		if line >= lastLine {
			continue
		}
		target := line + 1
		maxCol := maxColumnOfLine(buf, target, lastLine)
		if col > maxCol {
			col = maxCol
		}
		pos := buf.LineStartChar(target) + col
		v.Selections = append(v.Selections, selection.AtOffset(v.ID, pos))
	}
	return nil
}
