package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/grapheme"
	"github.com/dshills/quill/internal/highlight"
	"github.com/dshills/quill/internal/terminal"
	"github.com/dshills/quill/internal/theme"
)

// messageTimeout is how long the message bar keeps showing a message.
const messageTimeout = 5 * time.Second

type statusMessage struct {
	text string
	time time.Time
}

func (e *Editor) setMessage(format string, args ...any) {
	e.message = statusMessage{text: fmt.Sprintf(format, args...), time: time.Now()}
}

// refresh redraws the whole screen and repositions the cursor. Rows
// are highlighted through the bottom of the viewport only; anything
// below catches up when it scrolls into view.
func (e *Editor) refresh() {
	e.scroll()
	width, height := e.screen.Size()
	if width == 0 || height == 0 {
		return
	}

	_, viewH := e.viewSize()
	e.screen.HideCursor()
	e.screen.Clear()

	e.doc.Highlight(e.word, e.offset.Y+viewH)
	e.drawRows(width, viewH)
	e.drawStatusBar(width, height)
	e.drawMessageBar(width, height)

	e.screen.ShowCursor(e.cursorScreenX(), e.cursor.Y-e.offset.Y)
	e.screen.Show()
}

// drawRows paints the text area: document rows, the welcome banner on
// an empty document, and tildes past the end.
func (e *Editor) drawRows(width, height int) {
	for sy := 0; sy < height; sy++ {
		if row := e.doc.Row(e.offset.Y + sy); row != nil {
			e.drawRow(sy, row, width)
		} else if e.doc.IsEmpty() && sy == height/3 {
			e.drawWelcome(sy, width)
		} else {
			e.screen.SetText(0, sy, "~", terminal.Style{Foreground: e.fg(highlight.None)})
		}
	}
}

// drawRow paints one document row a cluster at a time so selection
// and wide characters stay cell accurate.
func (e *Editor) drawRow(sy int, row *document.Row, width int) {
	fileY := e.offset.Y + sy
	selBG := e.rgb(e.theme.Selection)

	x := 0
	g := e.offset.X
	for _, span := range row.Render(e.offset.X, e.offset.X+width) {
		fg := e.fg(span.Tag)
		for _, cluster := range grapheme.Split(span.Text) {
			if x >= width {
				return
			}
			style := terminal.Style{Foreground: fg}
			if e.selected(document.Position{X: g, Y: fileY}) {
				style.Background = selBG
			}
			x += e.screen.SetCluster(x, sy, cluster, style)
			g++
		}
	}
}

// drawWelcome centers the version banner the way the tilde column
// frames it.
func (e *Editor) drawWelcome(sy, width int) {
	msg := fmt.Sprintf("Quill editor -- version %s", e.version)
	padding := (width - grapheme.StringWidth(msg)) / 2
	if padding < 1 {
		padding = 1
	}
	msg = "~" + strings.Repeat(" ", padding-1) + msg
	e.screen.SetText(0, sy, truncateWidth(msg, width), terminal.Style{Foreground: e.fg(highlight.None)})
}

// drawStatusBar paints the inverted bar above the message line:
// filename, filetype, position, and dirty marker on the left, the
// mode name on the right.
func (e *Editor) drawStatusBar(width, height int) {
	if height < 2 {
		return
	}

	filename := "[No Name]"
	if name := e.doc.Filename(); name != "" {
		filename = truncateWidth(name, width/4)
	}
	dirty := ""
	if e.doc.IsDirty() {
		dirty = "(modified)"
	}
	left := fmt.Sprintf("%s - line: %s | %d/%d %s",
		filename, e.doc.FileType(), e.cursor.Y+1, e.doc.Len(), dirty)
	right := e.mode.String()

	gap := width - grapheme.StringWidth(left) - grapheme.StringWidth(right)
	status := left
	if gap >= 0 {
		status += strings.Repeat(" ", gap) + right
	} else {
		status = truncateWidth(status, width)
	}
	if pad := width - grapheme.StringWidth(status); pad > 0 {
		status += strings.Repeat(" ", pad)
	}

	style := terminal.Style{
		Foreground: e.rgb(e.theme.StatusForeground),
		Background: e.rgb(e.theme.StatusBackground),
	}
	e.screen.SetText(0, height-2, status, style)
}

// drawMessageBar paints the bottom line while the current message is
// under five seconds old.
func (e *Editor) drawMessageBar(width, height int) {
	if e.message.text == "" || time.Since(e.message.time) >= messageTimeout {
		return
	}
	text := truncateWidth(e.message.text, width)
	e.screen.SetText(0, height-1, text, terminal.Style{Foreground: e.fg(highlight.None)})
}

// fg returns the theme foreground for a highlight tag.
func (e *Editor) fg(tag highlight.Type) terminal.Color {
	return e.rgb(e.theme.ColorFor(tag))
}

func (e *Editor) rgb(c theme.Color) terminal.Color {
	return terminal.RGB(c.R, c.G, c.B)
}

// truncateWidth cuts s down to at most width display columns.
func truncateWidth(s string, width int) string {
	if grapheme.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	for _, cluster := range grapheme.Split(s) {
		cw := grapheme.Width(cluster)
		if w+cw > width {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	return b.String()
}
