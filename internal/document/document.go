package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/filetype"
	"github.com/dshills/quill/internal/highlight"
)

// ErrNotUTF8 reports a file whose content is not valid UTF-8. The
// editor refuses such files rather than corrupt them on save.
var ErrNotUTF8 = errors.New("not valid UTF-8")

// Document is an ordered list of rows plus the file they came from.
// Row indexes are zero-based; column indexes are grapheme clusters.
// Documents are not safe for concurrent use; the editor owns one and
// drives it from a single goroutine.
type Document struct {
	rows     []*Row
	filename string
	filetype *filetype.FileType
	registry *filetype.Registry
	dirty    bool
	backup   bool
}

// Option configures a document at construction.
type Option func(*Document)

// WithFileTypes supplies the registry used to derive a file type from
// the document's filename. Without it the builtin registry is used.
func WithFileTypes(reg *filetype.Registry) Option {
	return func(d *Document) {
		if reg != nil {
			d.registry = reg
		}
	}
}

// WithBackup makes Save copy the previous on-disk content to name~
// before rewriting the file.
func WithBackup() Option {
	return func(d *Document) { d.backup = true }
}

// New returns an empty, unnamed document.
func New(opts ...Option) *Document {
	d := &Document{registry: filetype.Default()}
	for _, opt := range opts {
		opt(d)
	}
	d.filetype = d.registry.Detect("")
	return d
}

// Open reads path into a new document. Line endings are normalized to
// LF; CRLF and lone CR files reopen cleanly but save back with LF. A
// trailing newline does not produce a final empty row, so open and save
// round-trip. Returns the read error for unreadable paths and a
// ErrNotUTF8-wrapped error for binary content.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	d := New(opts...)
	d.filename = path
	d.filetype = d.registry.Detect(path)
	for _, line := range splitLines(normalizeLineEndings(string(data))) {
		d.rows = append(d.rows, NewRow(line))
	}
	return d, nil
}

// Insert places ch at the given position. A newline rune splits the row
// there, or appends a fresh row when the position is at the end of a
// row or on the phantom line past the document. Any other rune lands in
// the addressed row. Positions below the phantom line are ignored.
func (d *Document) Insert(at Position, ch rune) {
	if at.Y > len(d.rows) {
		return
	}
	d.dirty = true
	switch {
	case ch == '\n':
		d.insertNewline(at)
	case at.Y == len(d.rows):
		row := NewRow("")
		row.Insert(0, ch)
		d.rows = append(d.rows, row)
	default:
		d.rows[at.Y].Insert(at.X, ch)
	}
	d.invalidateFrom(at.Y)
}

func (d *Document) insertNewline(at Position) {
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		return
	}
	row := d.rows[at.Y]
	if at.X >= row.Len() {
		// Appending an empty row skips rebuilding the current one.
		d.insertRow(at.Y+1, NewRow(""))
		return
	}
	d.insertRow(at.Y+1, row.Split(at.X))
}

func (d *Document) insertRow(at int, row *Row) {
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
}

// Delete removes the cluster at the given position. At the end of a row
// it instead merges the following row up, which is how backspace joins
// lines. Positions past the last row are ignored.
func (d *Document) Delete(at Position) {
	if at.Y >= len(d.rows) {
		return
	}
	d.dirty = true
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		next := d.rows[at.Y+1]
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		row.Append(next)
	} else {
		row.Delete(at.X)
	}
	d.invalidateFrom(at.Y)
}

// Save writes all rows to the document's filename, each terminated with
// LF, and clears the dirty flag. A document with no filename saves
// nowhere and reports success; the editor prompts for a name first. The
// file type is re-derived from the filename so save-as picks up the new
// extension.
func (d *Document) Save() error {
	if d.filename == "" {
		return nil
	}
	if d.backup {
		if err := d.writeBackup(); err != nil {
			return err
		}
	}
	d.filetype = d.registry.Detect(d.filename)
	var sb strings.Builder
	for _, row := range d.rows {
		sb.WriteString(row.Text())
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(d.filename, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// writeBackup copies the current on-disk content to name~ before Save
// rewrites it. A file that does not exist yet needs no backup.
func (d *Document) writeBackup() error {
	data, err := os.ReadFile(d.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(d.filename+"~", data, 0o644)
}

// Find searches for query starting at the given position. Forward
// searches scan from at to the end of the document, backward searches
// from the start up to at. Each row is searched with Row.Find; the
// first hit wins.
func (d *Document) Find(query string, at Position, dir Direction) (Position, bool) {
	if at.Y > len(d.rows) {
		return Position{}, false
	}
	pos := at
	start, end := at.Y, len(d.rows)
	if dir == Backward {
		start, end = 0, at.Y+1
	}
	for i := start; i < end; i++ {
		if pos.Y >= len(d.rows) {
			return Position{}, false
		}
		row := d.rows[pos.Y]
		if x, ok := row.Find(query, pos.X, dir); ok {
			pos.X = x
			return pos, true
		}
		if dir == Forward {
			pos.X = 0
			pos.Y++
		} else {
			if pos.Y > 0 {
				pos.Y--
			}
			pos.X = d.rows[pos.Y].Len()
		}
	}
	return Position{}, false
}

// Highlight recomputes highlight tags for rows 0 through `through`,
// threading block-comment state from each row into the next. Rows whose
// cached tags are current are skipped, so the cost of a refresh is
// bounded by the edit, not the file. A negative `through` highlights
// every row. word, when non-empty, overlays search matches.
//
// Highlighting always starts at row 0 so that cross-row comment state
// is derived only from actual row content.
func (d *Document) Highlight(word string, through int) {
	until := len(d.rows)
	if through >= 0 && through+1 < len(d.rows) {
		until = through + 1
	}
	state := highlight.StateNormal
	for _, row := range d.rows[:until] {
		state = row.Highlight(d.filetype.Options, word, state)
	}
}

func (d *Document) invalidateFrom(y int) {
	for i := y; i < len(d.rows); i++ {
		d.rows[i].highlighted = false
	}
}

// Row returns the row at index, or nil when index is out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// Len returns the number of rows.
func (d *Document) Len() int { return len(d.rows) }

// IsEmpty reports whether the document has no rows.
func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool { return d.dirty }

// Filename returns the path the document saves to, or "" when the
// document is unnamed.
func (d *Document) Filename() string { return d.filename }

// SetFilename renames the document. The file type updates on the next
// Save.
func (d *Document) SetFilename(name string) { d.filename = name }

// FileType returns the name of the document's detected file type.
func (d *Document) FileType() string { return d.filetype.Name }

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitLines breaks text into rows. The final empty fragment after a
// trailing newline is dropped so "a\n" is one row, not two.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
