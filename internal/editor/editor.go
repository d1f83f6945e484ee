// Package editor implements the interactive shell around a document:
// modal key dispatch, cursor and viewport tracking, incremental search,
// and the status and message bars. It draws through terminal.Screen and
// never touches tcell directly.
package editor

import (
	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/terminal"
	"github.com/dshills/quill/internal/theme"
)

const defaultHelp = "Help: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor drives one Document through a terminal Screen.
// It is not goroutine safe; Run owns it for the session and other
// goroutines reach it through Screen.Post.
type Editor struct {
	screen *terminal.Screen
	doc    *document.Document
	theme  *theme.Theme

	mode    Mode
	cursor  document.Position
	offset  document.Position
	anchor  document.Position
	pending rune

	word    string
	message statusMessage

	quit          bool
	quitTimes     int
	quitCountdown int
	tabWidth      int
	version       string

	clipboard Clipboard
	register  string

	saveHook func(name string)
}

// Option configures an Editor.
type Option func(*Editor)

// WithTheme selects the color theme.
func WithTheme(t *theme.Theme) Option {
	return func(e *Editor) {
		if t != nil {
			e.theme = t
		}
	}
}

// WithQuitTimes sets how many extra Ctrl-Q presses abandoning unsaved
// changes takes.
func WithQuitTimes(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.quitTimes = n
			e.quitCountdown = n
		}
	}
}

// WithTabWidth sets how many spaces the Tab key inserts.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n >= 1 {
			e.tabWidth = n
		}
	}
}

// WithVersion sets the version string shown in the welcome banner.
func WithVersion(v string) Option {
	return func(e *Editor) {
		if v != "" {
			e.version = v
		}
	}
}

// WithClipboard replaces the system clipboard, mainly for tests and
// headless environments.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		if c != nil {
			e.clipboard = c
		}
	}
}

// WithSaveHook registers fn to run after every successful save with
// the saved filename.
func WithSaveHook(fn func(name string)) Option {
	return func(e *Editor) {
		e.saveHook = fn
	}
}

// New creates an editor for doc drawing to screen.
func New(screen *terminal.Screen, doc *document.Document, opts ...Option) *Editor {
	e := &Editor{
		screen:        screen,
		doc:           doc,
		theme:         theme.Classic(),
		quitTimes:     3,
		quitCountdown: 3,
		tabWidth:      4,
		version:       "dev",
		clipboard:     SystemClipboard{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.setMessage(defaultHelp)
	return e
}

// Run redraws and processes events until the user quits or the screen
// shuts down.
func (e *Editor) Run() error {
	for {
		e.refresh()
		ev := e.screen.PollEvent()
		switch ev.Type {
		case terminal.EventKey:
			e.handleKey(ev)
		case terminal.EventResize:
			// the next refresh picks up the new size
		case terminal.EventFunc:
			ev.Fn()
		case terminal.EventQuit:
			return nil
		}
		if e.quit {
			return nil
		}
	}
}

// handleKey dispatches one keypress. Ctrl-Q, Ctrl-S, and Ctrl-F work
// in every mode; everything else is mode specific. Any key other than
// Ctrl-Q rewinds the quit countdown and clears its warning.
func (e *Editor) handleKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyCtrlQ:
		e.quitRequest()
		return
	case terminal.KeyCtrlS:
		e.save()
	case terminal.KeyCtrlF:
		e.search()
	default:
		switch e.mode {
		case ModeNormal:
			e.handleNormalKey(ev)
		case ModeInsert:
			e.handleInsertKey(ev)
		case ModeVisual:
			e.handleVisualKey(ev)
		}
	}
	if e.quitCountdown < e.quitTimes {
		e.quitCountdown = e.quitTimes
		e.setMessage("")
	}
}

// quitRequest quits immediately on a clean document and counts down
// on a dirty one.
func (e *Editor) quitRequest() {
	if e.quitCountdown > 0 && e.doc.IsDirty() {
		e.setMessage("WARN: unsaved changes, Ctrl-Q %d more times to quit", e.quitCountdown)
		e.quitCountdown--
		return
	}
	e.quit = true
}

// Document returns the document being edited.
func (e *Editor) Document() *document.Document { return e.doc }

// Mode returns the current input mode.
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the cursor position in grapheme coordinates.
func (e *Editor) Cursor() document.Position { return e.cursor }

// SetStatus replaces the message-bar text.
func (e *Editor) SetStatus(msg string) {
	e.setMessage("%s", msg)
}

// SetTheme swaps the color theme on the next redraw.
func (e *Editor) SetTheme(t *theme.Theme) {
	if t != nil {
		e.theme = t
	}
}

// SetTabWidth changes the Tab expansion width.
func (e *Editor) SetTabWidth(n int) {
	if n >= 1 {
		e.tabWidth = n
	}
}

// SetQuitTimes changes the unsaved-changes confirmation count and
// restarts the countdown.
func (e *Editor) SetQuitTimes(n int) {
	if n >= 0 {
		e.quitTimes = n
		e.quitCountdown = n
	}
}
