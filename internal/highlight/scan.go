package highlight

import (
	"strings"

	"github.com/dshills/quill/internal/grapheme"
)

// Scan classifies one row of text and returns one tag per grapheme
// cluster plus the block-comment state the row ends in. prev is the
// state the previous row ended in; the first row of a document scans
// from StateNormal. word, when non-empty, is an active search query
// whose occurrences are overlaid with the Match class after the main
// pass.
func Scan(line string, opts Options, word string, prev State) ([]Type, State) {
	s := &scanner{
		line:     line,
		clusters: grapheme.Split(line),
		opts:     opts,
	}
	s.tags = make([]Type, 0, len(s.clusters))
	out := s.run(prev)
	s.overlay(word)
	return s.tags, out
}

type scanner struct {
	line     string
	clusters []string
	opts     Options
	tags     []Type
	idx      int
	open     bool
}

func (s *scanner) run(prev State) State {
	if prev == StateComment && s.opts.MultilineComments {
		if !s.resumeComment() {
			return StateComment
		}
	}
	for s.idx < len(s.clusters) {
		switch {
		case s.blockComment():
		case s.charLiteral():
		case s.lineComment():
		case s.keywords(s.opts.PrimaryKeywords, PrimaryKeyword):
		case s.keywords(s.opts.SecondaryKeywords, SecondaryKeyword):
		case s.stringLiteral():
		case s.number():
		default:
			s.emit(None, 1)
		}
	}
	if s.open {
		return StateComment
	}
	return StateNormal
}

// resumeComment consumes the tail of a block comment opened on an
// earlier row. It reports whether the comment closed on this row.
func (s *scanner) resumeComment() bool {
	if end, ok := s.findClose(0); ok {
		s.emit(MultilineComment, end)
		return true
	}
	s.emit(MultilineComment, len(s.clusters))
	return false
}

// findClose locates the first */ at or after the given cluster index and
// returns the index just past it.
func (s *scanner) findClose(from int) (int, bool) {
	for j := from; j+1 < len(s.clusters); j++ {
		if s.clusters[j] == "*" && s.clusters[j+1] == "/" {
			return j + 2, true
		}
	}
	return 0, false
}

func (s *scanner) blockComment() bool {
	if !s.opts.MultilineComments || !s.lookingAt("/", "*") {
		return false
	}
	if end, ok := s.findClose(s.idx + 2); ok {
		s.emit(MultilineComment, end-s.idx)
		return true
	}
	s.emit(MultilineComment, len(s.clusters)-s.idx)
	s.open = true
	return true
}

// charLiteral recognizes 'x' and '\x' where x is any single cluster.
func (s *scanner) charLiteral() bool {
	if !s.opts.Characters || s.clusters[s.idx] != "'" {
		return false
	}
	body := s.idx + 1
	if body >= len(s.clusters) {
		return false
	}
	closing := body + 1
	if s.clusters[body] == `\` {
		closing = body + 2
	}
	if closing >= len(s.clusters) || s.clusters[closing] != "'" {
		return false
	}
	s.emit(Character, closing-s.idx+1)
	return true
}

func (s *scanner) lineComment() bool {
	if !s.opts.Comments || !s.lookingAt("/", "/") {
		return false
	}
	s.emit(Comment, len(s.clusters)-s.idx)
	return true
}

// keywords matches any word of the class at the cursor. A word counts
// only when bounded by separators; a missing neighbor at the start or
// end of the row counts as one.
func (s *scanner) keywords(words []string, class Type) bool {
	if len(words) == 0 {
		return false
	}
	if s.idx > 0 && !isSeparator(s.clusters[s.idx-1]) {
		return false
	}
	for _, w := range words {
		n := s.matchWord(w)
		if n == 0 {
			continue
		}
		if s.idx+n < len(s.clusters) && !isSeparator(s.clusters[s.idx+n]) {
			continue
		}
		s.emit(class, n)
		return true
	}
	return false
}

// matchWord reports how many clusters of the row the word covers at the
// cursor, or 0 when it does not match there.
func (s *scanner) matchWord(word string) int {
	if word == "" {
		return 0
	}
	n := 0
	rest := word
	for rest != "" {
		at := s.idx + n
		if at >= len(s.clusters) {
			return 0
		}
		c := s.clusters[at]
		if !strings.HasPrefix(rest, c) {
			return 0
		}
		rest = rest[len(c):]
		n++
	}
	return n
}

func (s *scanner) stringLiteral() bool {
	if !s.opts.Strings || s.clusters[s.idx] != `"` {
		return false
	}
	end := len(s.clusters)
	for j := s.idx + 1; j < len(s.clusters); j++ {
		if s.clusters[j] == `"` {
			end = j + 1
			break
		}
	}
	s.emit(String, end-s.idx)
	return true
}

// number tags a run of digits and dots. The run must start on a digit
// that follows a separator or the start of the row, so identifiers like
// x2 stay unclassified.
func (s *scanner) number() bool {
	if !s.opts.Numbers || !isDigit(s.clusters[s.idx]) {
		return false
	}
	if s.idx > 0 && !isSeparator(s.clusters[s.idx-1]) {
		return false
	}
	end := s.idx + 1
	for end < len(s.clusters) && (isDigit(s.clusters[end]) || s.clusters[end] == ".") {
		end++
	}
	s.emit(Number, end-s.idx)
	return true
}

// overlay retags occurrences of the search word with Match. Matches are
// found left to right and do not overlap.
func (s *scanner) overlay(word string) {
	if word == "" || len(s.clusters) == 0 {
		return
	}
	n := grapheme.Count(word)
	at := 0
	for at < len(s.clusters) {
		sub := grapheme.Slice(s.line, at, len(s.clusters))
		b := strings.Index(sub, word)
		if b < 0 {
			return
		}
		m := at + grapheme.ClusterIndex(sub, b)
		for j := m; j < m+n && j < len(s.tags); j++ {
			s.tags[j] = Match
		}
		at = m + n
	}
}

func (s *scanner) emit(t Type, n int) {
	for i := 0; i < n; i++ {
		s.tags = append(s.tags, t)
	}
	s.idx += n
}

func (s *scanner) lookingAt(a, b string) bool {
	return s.clusters[s.idx] == a && s.idx+1 < len(s.clusters) && s.clusters[s.idx+1] == b
}

func isDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

// isSeparator reports whether the cluster is a single ASCII punctuation
// or whitespace character. Keyword and number boundaries are judged
// against separators.
func isSeparator(cluster string) bool {
	if len(cluster) != 1 {
		return false
	}
	switch c := cluster[0]; {
	case c == ' ', c == '\t', c == '\n', c == '\f', c == '\r':
		return true
	case c >= '!' && c <= '/', c >= ':' && c <= '@', c >= '[' && c <= '`', c >= '{' && c <= '~':
		return true
	}
	return false
}
