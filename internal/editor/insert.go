package editor

import "github.com/dshills/quill/internal/terminal"

// handleInsertKey types text and handles the editing keys.
func (e *Editor) handleInsertKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape:
		e.mode = ModeNormal
	case terminal.KeyRune:
		e.insertRune(ev.Rune)
	case terminal.KeyEnter:
		e.insertRune('\n')
	case terminal.KeyTab:
		e.insertTab()
	case terminal.KeyBackspace:
		e.backspace()
	case terminal.KeyDelete:
		e.doc.Delete(e.cursor)
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
	}
}
