package editor

import (
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/terminal"
)

// search runs the incremental find prompt. Every keystroke re-runs the
// query from the cursor, Right and Down step to the next match, Left
// and Up to the previous, and Esc returns to where the search began.
// Matches stay highlighted while the prompt is live.
func (e *Editor) search() {
	origin := e.cursor

	_, ok := e.prompt("Search (ESC-cancel, Arrows-navigate): ", func(ev terminal.Event, query string) {
		direction := document.Forward
		moved := false
		switch ev.Key {
		case terminal.KeyRight, terminal.KeyDown:
			e.moveCursor(terminal.KeyRight)
			moved = true
		case terminal.KeyLeft, terminal.KeyUp:
			direction = document.Backward
		}
		if pos, found := e.doc.Find(query, e.cursor, direction); found {
			e.cursor = pos
		} else if moved {
			e.moveCursor(terminal.KeyLeft)
		}
		e.word = query
	})
	if !ok {
		e.cursor = origin
	}
	e.word = ""
}
