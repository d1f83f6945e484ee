package editor

import "github.com/atotto/clipboard"

// Clipboard moves yanked text in and out of the system clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// SystemClipboard is the default Clipboard, backed by the platform
// clipboard utilities.
type SystemClipboard struct{}

// Read returns the system clipboard contents.
func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the system clipboard contents.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// yank stores text in the internal register and, best effort, the
// system clipboard. Headless sessions keep working off the register.
func (e *Editor) yank(text string) {
	e.register = text
	if err := e.clipboard.Write(text); err != nil {
		e.setMessage("Clipboard unavailable, yank kept in editor")
	}
}

// pasteText returns the system clipboard contents, falling back to
// the internal register when the clipboard cannot be read.
func (e *Editor) pasteText() string {
	if text, err := e.clipboard.Read(); err == nil && text != "" {
		return text
	}
	return e.register
}

// paste inserts the yanked text at the cursor.
func (e *Editor) paste() {
	text := e.pasteText()
	if text == "" {
		e.setMessage("Nothing to paste")
		return
	}
	for _, r := range text {
		e.insertRune(r)
	}
}
