package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// render draws the active view's visible lines and a one-line status bar
// naming the mode and buffer, then the command-line when focused. Syntax
// highlighting and multi-cursor visualization are out of scope (spec §1
// treats rendering as an external collaborator) — this exists only so the
// engine built here is drivable from a real terminal.
func (t *Terminal) render() {
	e := t.engine
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	width, height := t.screen.Size()
	if height <= 0 || width <= 0 {
		return
	}
	t.screen.Clear()

	textHeight := height - 1
	lastLine := buf.LineOf(buf.LenChars())
	for row := 0; row < textHeight; row++ {
		lineIdx := v.VScroll + row
		if lineIdx > lastLine {
			break
		}
		runes := []rune(buf.LineText(lineIdx))
		for col := 0; col < width; col++ {
			srcCol := col + v.HScroll
			if srcCol >= len(runes) {
				break
			}
			t.screen.SetContent(col, row, runes[srcCol], nil, tcell.StyleDefault)
		}
	}

	statusRow := height - 1
	status := fmt.Sprintf(" %s | %s ", e.Mode, buf.Name)
	if e.CommandLine.Focused {
		status = ":" + e.CommandLine.Contents
	} else if msg := e.LastError(); msg != "" {
		status += "| " + msg
	}
	style := tcell.StyleDefault.Reverse(true)
	if e.CommandLine.Focused {
		style = tcell.StyleDefault
	}
	for col, r := range []rune(status) {
		if col >= width {
			break
		}
		t.screen.SetContent(col, statusRow, r, nil, style)
	}

	t.placeCursor(textHeight, statusRow, width)
	t.screen.Show()
}

// placeCursor shows the terminal cursor at the command-line's edit point
// when focused, otherwise at the primary selection's head, hiding it when
// that position scrolled out of the visible text area.
func (t *Terminal) placeCursor(textHeight, statusRow, width int) {
	e := t.engine
	if e.CommandLine.Focused {
		col := e.CommandLine.Cursor + 1
		if col < width {
			t.screen.ShowCursor(col, statusRow)
		} else {
			t.screen.HideCursor()
		}
		return
	}

	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	head := v.PrimarySelection().Head()
	line := buf.LineOf(head)
	col := head - buf.LineStartChar(line)

	row := line - v.VScroll
	screenCol := col - v.HScroll
	if row >= 0 && row < textHeight && screenCol >= 0 && screenCol < width {
		t.screen.ShowCursor(screenCol, row)
	} else {
		t.screen.HideCursor()
	}
}
