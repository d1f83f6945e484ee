package editor

import (
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/grapheme"
	"github.com/dshills/quill/internal/terminal"
)

// moveCursor applies one arrow motion. Left at column zero wraps to
// the end of the previous row, Right past the end wraps to the start
// of the next, and the column snaps back inside shorter rows.
func (e *Editor) moveCursor(key terminal.Key) {
	x, y := e.cursor.X, e.cursor.Y
	height := e.doc.Len()

	switch key {
	case terminal.KeyUp:
		if y > 0 {
			y--
		}
	case terminal.KeyDown:
		if y < height {
			y++
		}
	case terminal.KeyLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = e.rowLen(y)
		}
	case terminal.KeyRight:
		if x < e.rowLen(y) {
			x++
		} else if y < height {
			y++
			x = 0
		}
	}

	if w := e.rowLen(y); x > w {
		x = w
	}
	e.cursor = document.Position{X: x, Y: y}
}

// pageMove jumps one view height up (dir < 0) or down (dir > 0).
func (e *Editor) pageMove(dir int) {
	_, h := e.viewSize()
	y := e.cursor.Y + dir*h
	if y < 0 {
		y = 0
	}
	if max := e.doc.Len(); y > max {
		y = max
	}
	e.cursor.Y = y
	e.clampX()
}

// clampX keeps the cursor column within the current row.
func (e *Editor) clampX() {
	if w := e.rowLen(e.cursor.Y); e.cursor.X > w {
		e.cursor.X = w
	}
}

// rowLen returns the grapheme length of row y, or 0 past the end.
func (e *Editor) rowLen(y int) int {
	if row := e.doc.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

// viewSize returns the text area dimensions: the full screen width and
// the height minus the status and message bars.
func (e *Editor) viewSize() (int, int) {
	w, h := e.screen.Size()
	if h > 2 {
		h -= 2
	} else {
		h = 0
	}
	return w, h
}

// scroll slides the viewport offset the minimum distance that keeps
// the cursor visible.
func (e *Editor) scroll() {
	w, h := e.viewSize()

	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	} else if h > 0 && e.cursor.Y >= e.offset.Y+h {
		e.offset.Y = e.cursor.Y - h + 1
	}

	if e.cursor.X < e.offset.X {
		e.offset.X = e.cursor.X
	} else if w > 0 && e.cursor.X >= e.offset.X+w {
		e.offset.X = e.cursor.X - w + 1
	}
	// The bound above counts graphemes, but wide clusters take two
	// columns, so the cursor can still land past the right edge.
	for w > 0 && e.cursorScreenX() >= w && e.offset.X < e.cursor.X {
		e.offset.X++
	}
}

// cursorScreenX returns the display column of the cursor within the
// view, accounting for double-width clusters between the offset and
// the cursor.
func (e *Editor) cursorScreenX() int {
	row := e.doc.Row(e.cursor.Y)
	if row == nil {
		return 0
	}
	return grapheme.StringWidth(grapheme.Slice(row.Text(), e.offset.X, e.cursor.X))
}
