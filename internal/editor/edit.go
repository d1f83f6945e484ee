package editor

import (
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/terminal"
)

// insertRune types one rune at the cursor. A combining mark can merge
// into the previous cluster instead of forming a new one, in which
// case the caret stays where it is.
func (e *Editor) insertRune(r rune) {
	if r == '\n' {
		e.doc.Insert(e.cursor, '\n')
		e.cursor = document.Position{X: 0, Y: e.cursor.Y + 1}
		return
	}
	before := e.rowLen(e.cursor.Y)
	e.doc.Insert(e.cursor, r)
	if e.rowLen(e.cursor.Y) > before {
		e.cursor.X++
	}
}

// insertTab expands the Tab key into spaces.
func (e *Editor) insertTab() {
	for i := 0; i < e.tabWidth; i++ {
		e.insertRune(' ')
	}
}

// backspace deletes the cluster before the cursor, merging with the
// previous row at column zero.
func (e *Editor) backspace() {
	if e.cursor.X == 0 && e.cursor.Y == 0 {
		return
	}
	e.moveCursor(terminal.KeyLeft)
	e.doc.Delete(e.cursor)
}

// openLine starts a fresh row below (or above) the current one and
// enters insert mode.
func (e *Editor) openLine(below bool) {
	if below {
		e.cursor.X = e.rowLen(e.cursor.Y)
		e.insertRune('\n')
	} else {
		e.cursor.X = 0
		e.doc.Insert(e.cursor, '\n')
	}
	e.mode = ModeInsert
}

// deleteLine removes the cursor row entirely and stores its text,
// newline included, in the yank register. On the only row it just
// clears the text.
func (e *Editor) deleteLine() {
	y := e.cursor.Y
	row := e.doc.Row(y)
	if row == nil {
		return
	}
	e.yank(row.Text() + "\n")

	e.cursor = document.Position{X: 0, Y: y}
	for i := row.Len(); i > 0; i-- {
		e.doc.Delete(e.cursor)
	}
	switch {
	case y < e.doc.Len()-1:
		// pull the next row up into the emptied one
		e.doc.Delete(e.cursor)
	case y > 0:
		// last row: merge the emptied row into the one above
		e.cursor = document.Position{X: e.rowLen(y - 1), Y: y - 1}
		e.doc.Delete(e.cursor)
		e.cursor = document.Position{X: 0, Y: y - 1}
	}
	e.clampX()
}

// save writes the document out, prompting for a name when it has none.
func (e *Editor) save() {
	if e.doc.Filename() == "" {
		name, ok := e.prompt("Save as: ", nil)
		if !ok {
			e.setMessage("Save aborted")
			return
		}
		e.doc.SetFilename(name)
	}
	if err := e.doc.Save(); err != nil {
		e.setMessage("Failed to save file")
		return
	}
	e.setMessage("File saved successfully")
	if e.saveHook != nil {
		e.saveHook(e.doc.Filename())
	}
}
