package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/quill/internal/document"
	"github.com/dshills/quill/internal/terminal"
)

// memClip is an in-memory Clipboard standing in for the system one.
type memClip struct {
	text string
}

func (m *memClip) Read() (string, error)   { return m.text, nil }
func (m *memClip) Write(text string) error { m.text = text; return nil }

// failClip simulates a headless session with no clipboard utility.
type failClip struct{}

func (failClip) Read() (string, error) { return "", errors.New("no clipboard") }
func (failClip) Write(string) error    { return errors.New("no clipboard") }

func newTestDoc(t *testing.T, name, content string) *document.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := document.Open(path)
	if err != nil {
		t.Fatalf("Open(%q): %v", path, err)
	}
	return doc
}

func newTestScreen(t *testing.T) *terminal.Screen {
	t.Helper()
	s := terminal.NewSimulation()
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.Resize(40, 12)
	return s
}

// newEditor builds an editor on a simulation screen. An empty content
// string means a fresh unnamed document.
func newEditor(t *testing.T, content string, opts ...Option) (*Editor, *terminal.Screen) {
	t.Helper()
	s := newTestScreen(t)
	var doc *document.Document
	if content == "" {
		doc = document.New()
	} else {
		doc = newTestDoc(t, "doc.txt", content)
	}
	opts = append([]Option{WithClipboard(&memClip{})}, opts...)
	return New(s, doc, opts...), s
}

// typeRunes feeds each rune through handleKey as a typed key.
func typeRunes(e *Editor, s string) {
	for _, r := range s {
		e.handleKey(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r})
	}
}

// press feeds special keys through handleKey.
func press(e *Editor, keys ...terminal.Key) {
	for _, k := range keys {
		e.handleKey(terminal.Event{Type: terminal.EventKey, Key: k})
	}
}

func docText(d *document.Document) string {
	rows := make([]string, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		rows = append(rows, d.Row(i).Text())
	}
	return strings.Join(rows, "|")
}

// screenLine reassembles one screen row. Only safe for rows of
// single-width cells.
func screenLine(s *terminal.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteString(s.CellAt(x, y))
	}
	return strings.TrimRight(b.String(), " ")
}

// runEditor drives a full Run loop on its own goroutine, injects the
// events, appends a final Ctrl-Q, and waits for the loop to exit.
func runEditor(t *testing.T, e *Editor, s *terminal.Screen, events []terminal.Event) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- e.Run() }()

	for _, ev := range events {
		if ev.Key == terminal.KeyRune {
			s.InjectRune(ev.Rune)
		} else {
			s.InjectKey(ev.Key, 0)
		}
	}
	s.InjectKey(terminal.KeyCtrlQ, 0)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("editor did not quit")
	}
}

func typedEvents(s string) []terminal.Event {
	evs := make([]terminal.Event, 0, len(s))
	for _, r := range s {
		evs = append(evs, terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r})
	}
	return evs
}

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func TestRunTypesText(t *testing.T) {
	e, s := newEditor(t, "", WithQuitTimes(0))

	events := append(typedEvents("ihello"), keyEvent(terminal.KeyEscape))
	runEditor(t, e, s, events)

	if got := docText(e.Document()); got != "hello" {
		t.Errorf("document = %q, want %q", got, "hello")
	}
	if got := e.Cursor(); got != (document.Position{X: 5, Y: 0}) {
		t.Errorf("cursor = %+v, want {5 0}", got)
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", e.Mode())
	}
	if !e.Document().IsDirty() {
		t.Error("document not dirty after typing")
	}
}

func TestInsertEnterAndBackspace(t *testing.T) {
	e, _ := newEditor(t, "")

	typeRunes(e, "iabc")
	press(e, terminal.KeyEnter)
	typeRunes(e, "def")
	press(e, terminal.KeyBackspace, terminal.KeyEscape)

	if got := docText(e.Document()); got != "abc|de" {
		t.Errorf("document = %q, want %q", got, "abc|de")
	}
	if got := e.Cursor(); got != (document.Position{X: 2, Y: 1}) {
		t.Errorf("cursor = %+v, want {2 1}", got)
	}
}

func TestBackspaceMergesRows(t *testing.T) {
	e, _ := newEditor(t, "ab\ncd\n")

	typeRunes(e, "ji") // cursor to row 1, insert mode at column 0
	press(e, terminal.KeyBackspace)

	if got := docText(e.Document()); got != "abcd" {
		t.Errorf("document = %q, want %q", got, "abcd")
	}
	if got := e.Cursor(); got != (document.Position{X: 2, Y: 0}) {
		t.Errorf("cursor = %+v, want {2 0}", got)
	}
}

func TestInsertCombiningMark(t *testing.T) {
	e, _ := newEditor(t, "")

	typeRunes(e, "ie")
	typeRunes(e, "́") // combining acute merges into the e
	press(e, terminal.KeyEscape)

	row := e.Document().Row(0)
	if row == nil || row.Len() != 1 {
		t.Fatalf("row length = %v, want 1 cluster", row)
	}
	if e.Cursor().X != 1 {
		t.Errorf("cursor X = %d, want 1", e.Cursor().X)
	}
}

func TestTabInsertsSpaces(t *testing.T) {
	e, _ := newEditor(t, "", WithTabWidth(2))

	typeRunes(e, "i")
	press(e, terminal.KeyTab, terminal.KeyEscape)

	if got := docText(e.Document()); got != "  " {
		t.Errorf("document = %q, want two spaces", got)
	}
	if got := e.Cursor(); got != (document.Position{X: 2, Y: 0}) {
		t.Errorf("cursor = %+v, want {2 0}", got)
	}
}

func TestNormalMotions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		keys    string
		want    document.Position
	}{
		{"down and right", "alpha\nbeta\ngamma\n", "jjll", document.Position{X: 2, Y: 2}},
		{"line end", "alpha\nbeta\ngamma\n", "$", document.Position{X: 5, Y: 0}},
		{"line start", "alpha\nbeta\ngamma\n", "$0", document.Position{X: 0, Y: 0}},
		{"first non blank", "  padded\n", "^", document.Position{X: 2, Y: 0}},
		{"last line", "alpha\nbeta\ngamma\n", "G", document.Position{X: 0, Y: 2}},
		{"back to top", "alpha\nbeta\ngamma\n", "Ggg", document.Position{X: 0, Y: 0}},
		{"left wraps to previous row", "alpha\nbeta\n", "jh", document.Position{X: 5, Y: 0}},
		{"right wraps to next row", "alpha\nbeta\n", "$l", document.Position{X: 0, Y: 1}},
		{"column snaps to shorter row", "alpha\nhi\n", "$j", document.Position{X: 2, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEditor(t, tt.content)
			typeRunes(e, tt.keys)
			if got := e.Cursor(); got != tt.want {
				t.Errorf("cursor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPageMove(t *testing.T) {
	e, _ := newEditor(t, strings.Repeat("line\n", 30))

	press(e, terminal.KeyPageDown)
	if got := e.Cursor().Y; got != 10 {
		t.Fatalf("after PageDown cursor Y = %d, want 10", got)
	}
	press(e, terminal.KeyPageDown, terminal.KeyPageDown)
	if got := e.Cursor().Y; got != 30 {
		t.Fatalf("PageDown clamps to %d, want 30", got)
	}
	press(e, terminal.KeyPageUp)
	if got := e.Cursor().Y; got != 20 {
		t.Fatalf("after PageUp cursor Y = %d, want 20", got)
	}
}

func TestDeleteLine(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "alpha\nbeta\ngamma\n", WithClipboard(clip))

	typeRunes(e, "dd")

	if got := docText(e.Document()); got != "beta|gamma" {
		t.Errorf("document = %q, want %q", got, "beta|gamma")
	}
	if clip.text != "alpha\n" {
		t.Errorf("yank = %q, want %q", clip.text, "alpha\n")
	}
	if got := e.Cursor(); got != (document.Position{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want {0 0}", got)
	}

	// paste the deleted line back above the cursor row
	typeRunes(e, "p")
	if got := docText(e.Document()); got != "alpha|beta|gamma" {
		t.Errorf("after paste document = %q, want %q", got, "alpha|beta|gamma")
	}
}

func TestDeleteLastLine(t *testing.T) {
	e, _ := newEditor(t, "alpha\nbeta\n")

	typeRunes(e, "jdd")

	if got := docText(e.Document()); got != "alpha" {
		t.Errorf("document = %q, want %q", got, "alpha")
	}
	if got := e.Cursor(); got != (document.Position{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want {0 0}", got)
	}
}

func TestDeleteOnlyLine(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "solo\n", WithClipboard(clip))

	typeRunes(e, "dd")

	if e.Document().Len() != 1 || e.Document().Row(0).Len() != 0 {
		t.Errorf("document = %q, want one empty row", docText(e.Document()))
	}
	if clip.text != "solo\n" {
		t.Errorf("yank = %q, want %q", clip.text, "solo\n")
	}
}

func TestPendingSequenceDrops(t *testing.T) {
	e, _ := newEditor(t, "alpha\nbeta\n")

	// d followed by a motion must not delete anything
	typeRunes(e, "djd")
	if got := docText(e.Document()); got != "alpha|beta" {
		t.Errorf("document = %q, want untouched rows", got)
	}
	if e.pending != 'd' {
		t.Errorf("pending = %q, want restarted d", e.pending)
	}
}

func TestOpenLines(t *testing.T) {
	e, _ := newEditor(t, "ab\n")

	typeRunes(e, "oc")
	press(e, terminal.KeyEscape)
	if got := docText(e.Document()); got != "ab|c" {
		t.Fatalf("after o document = %q, want %q", got, "ab|c")
	}

	typeRunes(e, "O")
	if e.Mode() != ModeInsert {
		t.Fatalf("O left mode = %v, want ModeInsert", e.Mode())
	}
	press(e, terminal.KeyEscape)
	if got := docText(e.Document()); got != "ab||c" {
		t.Fatalf("after O document = %q, want %q", got, "ab||c")
	}

	// x on the empty row merges the row below into it
	typeRunes(e, "x")
	if got := docText(e.Document()); got != "ab|c" {
		t.Errorf("after x document = %q, want %q", got, "ab|c")
	}
}

func TestVisualYank(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "hello world\n", WithClipboard(clip))

	typeRunes(e, "vlllly")

	if clip.text != "hello" {
		t.Errorf("yank = %q, want %q", clip.text, "hello")
	}
	if e.Mode() != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", e.Mode())
	}
	if got := e.Cursor(); got != (document.Position{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want selection start", got)
	}
}

func TestVisualDelete(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "hello world\n", WithClipboard(clip))

	typeRunes(e, "vllllld")

	if got := docText(e.Document()); got != "world" {
		t.Errorf("document = %q, want %q", got, "world")
	}
	if clip.text != "hello " {
		t.Errorf("yank = %q, want %q", clip.text, "hello ")
	}
}

func TestVisualMultilineYank(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "ab\ncd\n", WithClipboard(clip))

	typeRunes(e, "vjy")

	if clip.text != "ab\nc" {
		t.Errorf("yank = %q, want %q", clip.text, "ab\nc")
	}
}

func TestVisualMultilineDelete(t *testing.T) {
	e, _ := newEditor(t, "ab\ncd\n")

	typeRunes(e, "vjd")

	if got := docText(e.Document()); got != "d" {
		t.Errorf("document = %q, want %q", got, "d")
	}
}

func TestVisualPasteReplacesSelection(t *testing.T) {
	clip := &memClip{text: "hey"}
	e, _ := newEditor(t, "hello world\n", WithClipboard(clip))

	typeRunes(e, "vllllp")

	if got := docText(e.Document()); got != "hey world" {
		t.Errorf("document = %q, want %q", got, "hey world")
	}
	// the replaced text becomes the new yank
	if clip.text != "hello" {
		t.Errorf("yank = %q, want %q", clip.text, "hello")
	}
}

func TestVisualReverseSelection(t *testing.T) {
	clip := &memClip{}
	e, _ := newEditor(t, "hello\n", WithClipboard(clip))

	// anchor at the end, extend backward
	typeRunes(e, "$hvhhy")

	if clip.text != "llo" {
		t.Errorf("yank = %q, want %q", clip.text, "llo")
	}
}

func TestSelected(t *testing.T) {
	e, _ := newEditor(t, "alpha\nbeta\ngamma\n")
	e.mode = ModeVisual
	e.anchor = document.Position{X: 2, Y: 0}
	e.cursor = document.Position{X: 1, Y: 1}

	tests := []struct {
		pos  document.Position
		want bool
	}{
		{document.Position{X: 1, Y: 0}, false},
		{document.Position{X: 2, Y: 0}, true},
		{document.Position{X: 4, Y: 0}, true},
		{document.Position{X: 0, Y: 1}, true},
		{document.Position{X: 1, Y: 1}, true},
		{document.Position{X: 2, Y: 1}, false},
		{document.Position{X: 0, Y: 2}, false},
	}
	for _, tt := range tests {
		if got := e.selected(tt.pos); got != tt.want {
			t.Errorf("selected(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}

	e.mode = ModeNormal
	if e.selected(document.Position{X: 2, Y: 0}) {
		t.Error("selection active outside visual mode")
	}
}

func TestClipboardFallback(t *testing.T) {
	e, _ := newEditor(t, "hello\n", WithClipboard(failClip{}))

	typeRunes(e, "vly")
	if e.register != "he" {
		t.Fatalf("register = %q, want %q", e.register, "he")
	}
	if !strings.Contains(e.message.text, "Clipboard unavailable") {
		t.Errorf("message = %q, want clipboard warning", e.message.text)
	}

	typeRunes(e, "p")
	if got := docText(e.Document()); got != "hehello" {
		t.Errorf("document = %q, want register paste", got)
	}
}

func TestQuitCountdown(t *testing.T) {
	e, _ := newEditor(t, "hi\n", WithQuitTimes(2))
	e.Document().Insert(document.Position{}, 'x')

	press(e, terminal.KeyCtrlQ)
	if e.quit {
		t.Fatal("quit on first Ctrl-Q with unsaved changes")
	}
	if want := "WARN: unsaved changes, Ctrl-Q 2 more times to quit"; e.message.text != want {
		t.Errorf("message = %q, want %q", e.message.text, want)
	}

	// any other key rewinds the countdown and clears the warning
	typeRunes(e, "j")
	if e.quitCountdown != 2 {
		t.Errorf("countdown = %d, want 2 after reset", e.quitCountdown)
	}
	if e.message.text != "" {
		t.Errorf("message = %q, want cleared", e.message.text)
	}

	press(e, terminal.KeyCtrlQ, terminal.KeyCtrlQ, terminal.KeyCtrlQ)
	if !e.quit {
		t.Error("still running after full countdown")
	}
}

func TestQuitCleanDocument(t *testing.T) {
	e, _ := newEditor(t, "hi\n", WithQuitTimes(2))

	press(e, terminal.KeyCtrlQ)
	if !e.quit {
		t.Error("clean document needed more than one Ctrl-Q")
	}
}

func TestSaveNamed(t *testing.T) {
	var hooked string
	e, _ := newEditor(t, "hi\n", WithSaveHook(func(name string) { hooked = name }))

	typeRunes(e, "ix")
	press(e, terminal.KeyEscape, terminal.KeyCtrlS)

	data, err := os.ReadFile(e.Document().Filename())
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "xhi\n" {
		t.Errorf("saved = %q, want %q", data, "xhi\n")
	}
	if e.Document().IsDirty() {
		t.Error("document still dirty after save")
	}
	if want := "File saved successfully"; e.message.text != want {
		t.Errorf("message = %q, want %q", e.message.text, want)
	}
	if hooked != e.Document().Filename() {
		t.Errorf("save hook got %q, want %q", hooked, e.Document().Filename())
	}
}

func TestSavePrompt(t *testing.T) {
	e, s := newEditor(t, "", WithQuitTimes(0))
	path := filepath.Join(t.TempDir(), "out.txt")

	events := append(typedEvents("ihi"), keyEvent(terminal.KeyEscape), keyEvent(terminal.KeyCtrlS))
	events = append(events, typedEvents(path)...)
	events = append(events, keyEvent(terminal.KeyEnter))
	runEditor(t, e, s, events)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hi\n" {
		t.Errorf("saved = %q, want %q", data, "hi\n")
	}
	if got := e.Document().Filename(); got != path {
		t.Errorf("filename = %q, want %q", got, path)
	}
	if e.Document().IsDirty() {
		t.Error("document still dirty after save as")
	}
}

func TestSaveAbort(t *testing.T) {
	e, s := newEditor(t, "", WithQuitTimes(0))

	events := append(typedEvents("ihi"), keyEvent(terminal.KeyEscape),
		keyEvent(terminal.KeyCtrlS), keyEvent(terminal.KeyEscape))
	runEditor(t, e, s, events)

	if want := "Save aborted"; e.message.text != want {
		t.Errorf("message = %q, want %q", e.message.text, want)
	}
	if got := e.Document().Filename(); got != "" {
		t.Errorf("filename = %q, want unnamed", got)
	}
	if !e.Document().IsDirty() {
		t.Error("aborted save cleared the dirty flag")
	}
}

func TestSearchForward(t *testing.T) {
	doc := newTestDoc(t, "doc.txt", "foo bar\nbaz foo\n")
	s := newTestScreen(t)
	e := New(s, doc, WithQuitTimes(0), WithClipboard(&memClip{}))

	events := []terminal.Event{keyEvent(terminal.KeyCtrlF)}
	events = append(events, typedEvents("foo")...)
	events = append(events, keyEvent(terminal.KeyRight), keyEvent(terminal.KeyEnter))
	runEditor(t, e, s, events)

	if got := e.Cursor(); got != (document.Position{X: 4, Y: 1}) {
		t.Errorf("cursor = %+v, want next match {4 1}", got)
	}
	if e.word != "" {
		t.Errorf("match overlay still %q after search ended", e.word)
	}
}

func TestSearchBackward(t *testing.T) {
	doc := newTestDoc(t, "doc.txt", "foo bar\nbaz foo\n")
	s := newTestScreen(t)
	e := New(s, doc, WithQuitTimes(0), WithClipboard(&memClip{}))

	// start from the bottom, search up past the second match
	events := append(typedEvents("G"), keyEvent(terminal.KeyCtrlF))
	events = append(events, typedEvents("foo")...)
	events = append(events, keyEvent(terminal.KeyLeft), keyEvent(terminal.KeyEnter))
	runEditor(t, e, s, events)

	if got := e.Cursor(); got != (document.Position{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want previous match {0 0}", got)
	}
}

func TestSearchCancelRestores(t *testing.T) {
	doc := newTestDoc(t, "doc.txt", "foo bar\nbaz foo\n")
	s := newTestScreen(t)
	e := New(s, doc, WithQuitTimes(0), WithClipboard(&memClip{}))

	events := []terminal.Event{keyEvent(terminal.KeyCtrlF)}
	events = append(events, typedEvents("bar")...)
	events = append(events, keyEvent(terminal.KeyEscape))
	runEditor(t, e, s, events)

	if got := e.Cursor(); got != (document.Position{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want starting position restored", got)
	}
}

func TestRefreshDrawsStatusAndWelcome(t *testing.T) {
	e, s := newEditor(t, "")

	e.refresh()

	status := screenLine(s, 10, 40)
	if !strings.HasPrefix(status, "[No Name] - line: plain | 1/0") {
		t.Errorf("status = %q, want [No Name] prefix", status)
	}
	if !strings.HasSuffix(status, "NORMAL") {
		t.Errorf("status = %q, want NORMAL on the right", status)
	}

	welcome := screenLine(s, 3, 40)
	if !strings.Contains(welcome, "Quill editor -- version dev") {
		t.Errorf("welcome row = %q, want version banner", welcome)
	}
	if !strings.HasPrefix(welcome, "~") {
		t.Errorf("welcome row = %q, want tilde frame", welcome)
	}

	if got := screenLine(s, 0, 40); got != "~" {
		t.Errorf("empty row = %q, want tilde", got)
	}

	message := screenLine(s, 11, 40)
	if !strings.Contains(message, "Ctrl-S = save") {
		t.Errorf("message row = %q, want help text", message)
	}
}

func TestRefreshDrawsHighlightedRow(t *testing.T) {
	doc := newTestDoc(t, "main.go", "if x\n")
	s := newTestScreen(t)
	e := New(s, doc, WithClipboard(&memClip{}))

	e.refresh()

	keyword := terminal.RGB(221, 160, 221)
	if got := s.StyleAt(0, 0).Foreground; got != keyword {
		t.Errorf("keyword color = %+v, want %+v", got, keyword)
	}
	plain := terminal.RGB(255, 255, 255)
	if got := s.StyleAt(3, 0).Foreground; got != plain {
		t.Errorf("identifier color = %+v, want %+v", got, plain)
	}

	statusBG := terminal.RGB(239, 239, 239)
	if got := s.StyleAt(0, 10).Background; got != statusBG {
		t.Errorf("status background = %+v, want %+v", got, statusBG)
	}

	status := screenLine(s, 10, 40)
	if !strings.Contains(status, " - line: Go | 1/1") {
		t.Errorf("status = %q, want Go filetype and position", status)
	}
}

func TestRefreshDrawsSelection(t *testing.T) {
	e, s := newEditor(t, "hello\n")

	typeRunes(e, "vll")
	e.refresh()

	selBG := terminal.RGB(64, 64, 128)
	for x := 0; x <= 2; x++ {
		if got := s.StyleAt(x, 0).Background; got != selBG {
			t.Errorf("cell %d background = %+v, want selection", x, got)
		}
	}
	if got := s.StyleAt(3, 0).Background; got == selBG {
		t.Error("cell 3 selected, want selection to stop at cursor")
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	e, _ := newEditor(t, strings.Repeat("line\n", 30))

	typeRunes(e, "G")
	e.refresh()

	// view height is 10, so row 29 needs offset 20
	if e.offset.Y != 20 {
		t.Errorf("offset Y = %d, want 20", e.offset.Y)
	}

	typeRunes(e, "gg")
	e.refresh()
	if e.offset.Y != 0 {
		t.Errorf("offset Y = %d, want 0 after gg", e.offset.Y)
	}
}

func TestScrollWideClusters(t *testing.T) {
	e, _ := newEditor(t, strings.Repeat("日", 30)+"\n")

	typeRunes(e, "$")
	e.refresh()

	// 30 double-width clusters do not fit in 40 columns; the offset
	// must advance until the cursor column is on screen.
	if e.offset.X != 11 {
		t.Errorf("offset X = %d, want 11", e.offset.X)
	}
	if got := e.cursorScreenX(); got != 38 {
		t.Errorf("cursor screen X = %d, want 38", got)
	}
}

func TestMessageExpires(t *testing.T) {
	e, s := newEditor(t, "hi\n")

	e.setMessage("short lived")
	e.message.time = time.Now().Add(-messageTimeout)
	e.refresh()

	if got := screenLine(s, 11, 40); got != "" {
		t.Errorf("message row = %q, want expired message gone", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "NORMAL"},
		{ModeInsert, "INSERT"},
		{ModeVisual, "VISUAL"},
		{Mode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
