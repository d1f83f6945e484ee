package document

import (
	"strings"

	"github.com/dshills/quill/internal/grapheme"
	"github.com/dshills/quill/internal/highlight"
)

// Row is a single line of text. All indexes into a row are grapheme
// cluster positions, so a combining sequence or a ZWJ emoji counts as
// one column. A row caches its highlight tags between edits.
type Row struct {
	text        string
	length      int
	tags        []highlight.Type
	endState    highlight.State
	highlighted bool
}

// NewRow builds a row from text. The text must not contain newlines;
// the document layer owns line structure.
func NewRow(text string) *Row {
	return &Row{text: text, length: grapheme.Count(text)}
}

// Text returns the row's content.
func (r *Row) Text() string { return r.text }

// String returns the row's content.
func (r *Row) String() string { return r.text }

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return r.length }

// IsEmpty reports whether the row has no content.
func (r *Row) IsEmpty() bool { return r.length == 0 }

// Insert places ch before the cluster at index at. An index at or past
// the end appends. Inserting a combining mark after its base character
// can merge two clusters into one, so the row's length is recounted
// rather than assumed to grow.
func (r *Row) Insert(at int, ch rune) {
	if at >= r.length {
		r.text += string(ch)
	} else {
		off := grapheme.ByteOffset(r.text, at)
		r.text = r.text[:off] + string(ch) + r.text[off:]
	}
	r.invalidate()
}

// Delete removes the cluster at index at. Out-of-range indexes are
// ignored.
func (r *Row) Delete(at int) {
	if at >= r.length {
		return
	}
	r.text = grapheme.Slice(r.text, 0, at) + grapheme.Slice(r.text, at+1, r.length)
	r.invalidate()
}

// Append concatenates other onto the end of the row.
func (r *Row) Append(other *Row) {
	r.text += other.text
	r.invalidate()
}

// Split truncates the row at index at and returns a new row holding the
// remainder.
func (r *Row) Split(at int) *Row {
	rest := grapheme.Slice(r.text, at, r.length)
	r.text = grapheme.Slice(r.text, 0, at)
	r.invalidate()
	return NewRow(rest)
}

// Find locates query within the row and returns the grapheme index of
// the match. Forward searches scan [at, len); backward searches scan
// [0, at) and return the last match. The empty query never matches.
func (r *Row) Find(query string, at int, dir Direction) (int, bool) {
	if query == "" || at > r.length {
		return 0, false
	}
	start, end := at, r.length
	if dir == Backward {
		start, end = 0, at
	}
	sub := grapheme.Slice(r.text, start, end)
	var off int
	if dir == Forward {
		off = strings.Index(sub, query)
	} else {
		off = strings.LastIndex(sub, query)
	}
	if off < 0 {
		return 0, false
	}
	return start + grapheme.ClusterIndex(sub, off), true
}

// FirstNonBlank returns the index of the first cluster that is not
// whitespace, or 0 when the row is blank.
func (r *Row) FirstNonBlank() int {
	idx := 0
	for i, c := range grapheme.Split(r.text) {
		if !grapheme.IsSpace(c) {
			idx = i
			break
		}
	}
	return idx
}

// Highlight computes the row's highlight tags and returns the
// block-comment state the row ends in. prev is the state the previous
// row ended in. word, when non-empty, overlays search matches; those
// results are never cached, so the next pass without a word restores
// the plain tags.
//
// A row whose tags are already current is not rescanned; it replays the
// end state recorded when it was. The document invalidates every row
// below an edit, so a cached row's incoming state cannot have changed.
func (r *Row) Highlight(opts highlight.Options, word string, prev highlight.State) highlight.State {
	if r.highlighted && word == "" {
		return r.endState
	}
	tags, out := highlight.Scan(r.text, opts, word, prev)
	r.tags = tags
	r.endState = out
	r.highlighted = word == ""
	return out
}

// Tag returns the highlight class of the cluster at index, or None when
// the index is out of range or the row has not been highlighted.
func (r *Row) Tag(index int) highlight.Type {
	if index < 0 || index >= len(r.tags) {
		return highlight.None
	}
	return r.tags[index]
}

// Span is a run of consecutive clusters sharing one highlight class.
type Span struct {
	Text string
	Tag  highlight.Type
}

// Render returns the visible slice [start, end) of the row grouped into
// highlight spans. end is additionally clamped to the row's byte
// length, which never cuts content because a cluster is at least one
// byte. Indexes outside the row yield no spans.
func (r *Row) Render(start, end int) []Span {
	if end > len(r.text) {
		end = len(r.text)
	}
	if start > end {
		start = end
	}
	if start < 0 {
		start = 0
	}
	clusters := grapheme.Split(r.text)
	if start >= len(clusters) {
		return nil
	}
	if end > len(clusters) {
		end = len(clusters)
	}
	var spans []Span
	var run strings.Builder
	cur := r.Tag(start)
	for i := start; i < end; i++ {
		if tag := r.Tag(i); tag != cur {
			spans = append(spans, Span{Text: run.String(), Tag: cur})
			run.Reset()
			cur = tag
		}
		run.WriteString(clusters[i])
	}
	if run.Len() > 0 {
		spans = append(spans, Span{Text: run.String(), Tag: cur})
	}
	return spans
}

func (r *Row) invalidate() {
	r.length = grapheme.Count(r.text)
	r.highlighted = false
}
