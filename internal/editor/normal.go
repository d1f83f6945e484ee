package editor

import (
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/terminal"
)

// handleNormalKey dispatches normal-mode keys. Any non-rune key drops
// a pending two-key sequence such as dd or gg.
func (e *Editor) handleNormalKey(ev terminal.Event) {
	if ev.Key != terminal.KeyRune {
		e.pending = 0
	}
	switch ev.Key {
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.moveCursor(ev.Key)
	case terminal.KeyHome:
		e.cursor.X = 0
	case terminal.KeyEnd:
		e.cursor.X = e.rowLen(e.cursor.Y)
	case terminal.KeyPageUp:
		e.pageMove(-1)
	case terminal.KeyPageDown:
		e.pageMove(1)
	case terminal.KeyDelete:
		e.doc.Delete(e.cursor)
	case terminal.KeyRune:
		e.handleNormalRune(ev.Rune)
	}
}

func (e *Editor) handleNormalRune(r rune) {
	pending := e.pending
	e.pending = 0

	switch r {
	case 'h':
		e.moveCursor(terminal.KeyLeft)
	case 'j':
		e.moveCursor(terminal.KeyDown)
	case 'k':
		e.moveCursor(terminal.KeyUp)
	case 'l':
		e.moveCursor(terminal.KeyRight)
	case '0':
		e.cursor.X = 0
	case '^':
		e.cursor.X = e.firstNonBlank(e.cursor.Y)
	case '$':
		e.cursor.X = e.rowLen(e.cursor.Y)
	case 'G':
		e.cursor = document.Position{X: 0, Y: e.lastRow()}
	case 'g':
		if pending == 'g' {
			e.cursor = document.Position{}
		} else {
			e.pending = 'g'
		}
	case 'd':
		if pending == 'd' {
			e.deleteLine()
		} else {
			e.pending = 'd'
		}
	case 'x':
		e.doc.Delete(e.cursor)
	case 'i':
		e.mode = ModeInsert
	case 'o':
		e.openLine(true)
	case 'O':
		e.openLine(false)
	case 'v':
		e.mode = ModeVisual
		e.anchor = e.cursor
	case 'p':
		e.paste()
	}
}

// firstNonBlank returns the column of the first non-whitespace cluster
// on row y.
func (e *Editor) firstNonBlank(y int) int {
	if row := e.doc.Row(y); row != nil {
		return row.FirstNonBlank()
	}
	return 0
}

// lastRow returns the index of the last real row, or 0 when the
// document is empty.
func (e *Editor) lastRow() int {
	if n := e.doc.Len(); n > 0 {
		return n - 1
	}
	return 0
}
