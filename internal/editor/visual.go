package editor

import (
	"strings"

	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/grapheme"
	"github.com/dshills/quill/internal/terminal"
)

// handleVisualKey extends the selection with the normal motions and
// dispatches the selection operators.
func (e *Editor) handleVisualKey(ev terminal.Event) {
	if ev.Key != terminal.KeyRune {
		e.pending = 0
	}
	switch ev.Key {
	case terminal.KeyEscape:
		e.mode = ModeNormal
		return
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.moveCursor(ev.Key)
		return
	case terminal.KeyHome:
		e.cursor.X = 0
		return
	case terminal.KeyEnd:
		e.cursor.X = e.rowLen(e.cursor.Y)
		return
	case terminal.KeyPageUp:
		e.pageMove(-1)
		return
	case terminal.KeyPageDown:
		e.pageMove(1)
		return
	case terminal.KeyRune:
	default:
		return
	}

	pending := e.pending
	e.pending = 0

	switch ev.Rune {
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
	case 'v':
		e.mode = ModeNormal
	case 'y':
		text := e.selectionText()
		e.setMessage("Yanked %d clusters", grapheme.Count(text))
		e.cursor, _ = e.selectionRange()
		e.mode = ModeNormal
		e.yank(text)
	case 'd', 'x':
		e.deleteSelection()
	case 'p':
		e.replaceSelection()
	}
}

// selectionRange returns the selection endpoints in document order.
func (e *Editor) selectionRange() (document.Position, document.Position) {
	if e.anchor.After(e.cursor) {
		return e.cursor, e.anchor
	}
	return e.anchor, e.cursor
}

// selected reports whether pos falls inside the active selection. The
// selection is inclusive of both endpoints.
func (e *Editor) selected(pos document.Position) bool {
	if e.mode != ModeVisual {
		return false
	}
	start, end := e.selectionRange()
	return pos.Compare(start) >= 0 && pos.Compare(end) <= 0
}

// selectionText returns the selected clusters with a newline wherever
// the selection crosses a row boundary.
func (e *Editor) selectionText() string {
	start, end := e.selectionRange()
	var b strings.Builder
	pos := start
	for pos.Compare(end) <= 0 {
		row := e.doc.Row(pos.Y)
		if row == nil {
			break
		}
		if pos.X >= row.Len() {
			b.WriteByte('\n')
			pos = document.Position{X: 0, Y: pos.Y + 1}
			continue
		}
		b.WriteString(grapheme.At(row.Text(), pos.X))
		pos.X++
	}
	return b.String()
}

// deleteSelection yanks and removes the selected clusters, leaving
// the cursor at the selection start in normal mode.
func (e *Editor) deleteSelection() {
	text := e.selectionText()
	e.yank(text)
	start, _ := e.selectionRange()
	for i := grapheme.Count(text); i > 0; i-- {
		e.doc.Delete(start)
	}
	e.cursor = start
	e.clampX()
	e.mode = ModeNormal
}

// replaceSelection swaps the selection for the previously yanked text.
// The deleted selection becomes the new yank, the way vi registers
// rotate on visual paste.
func (e *Editor) replaceSelection() {
	replacement := e.pasteText()
	e.deleteSelection()
	for _, r := range replacement {
		e.insertRune(r)
	}
}
