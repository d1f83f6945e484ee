// Package grapheme provides grapheme-cluster addressing for UTF-8 text.
//
// Every caret, highlight, and search position in quill is a grapheme
// cluster index, never a byte or rune offset. A cluster is what a person
// perceives as one character: "e" plus a combining accent, a flag emoji,
// or a ZWJ-joined family emoji each occupy exactly one position.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// Split returns the grapheme clusters of s in order. It returns nil for
// the empty string.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.StepString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// At returns the grapheme cluster at index, or "" when index is out of
// range.
func At(s string, index int) string {
	if index < 0 {
		return ""
	}
	state := -1
	var cluster string
	for i := 0; len(s) > 0; i++ {
		cluster, s, _, state = uniseg.StepString(s, state)
		if i == index {
			return cluster
		}
	}
	return ""
}

// ByteOffset converts a grapheme index into a byte offset within s.
// Indexes at or beyond the cluster count map to len(s); negative indexes
// map to 0.
func ByteOffset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	offset := 0
	state := -1
	var cluster string
	for i := 0; len(s) > 0; i++ {
		if i == index {
			return offset
		}
		cluster, s, _, state = uniseg.StepString(s, state)
		offset += len(cluster)
	}
	return offset
}

// ClusterIndex converts a byte offset into the index of the grapheme
// cluster containing it. Offsets at or beyond len(s) map to the cluster
// count; negative offsets map to 0.
func ClusterIndex(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return Count(s)
	}
	pos := 0
	state := -1
	var cluster string
	for i := 0; len(s) > 0; i++ {
		cluster, s, _, state = uniseg.StepString(s, state)
		pos += len(cluster)
		if offset < pos {
			return i
		}
	}
	return 0
}

// Slice returns the substring of s covering grapheme indexes
// [start, end). Both bounds are clamped to the cluster range and an
// empty window yields "".
func Slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if s == "" || end <= start {
		return ""
	}
	from, to := -1, len(s)
	pos := 0
	state := -1
	var cluster string
	rest := s
	for i := 0; len(rest) > 0; i++ {
		if i == start {
			from = pos
		}
		if i == end {
			to = pos
			break
		}
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
	}
	if from < 0 {
		if start == 0 {
			from = 0
		} else {
			return ""
		}
	}
	return s[from:to]
}

// Width reports the number of terminal cells a single cluster occupies.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		// Zero-width clusters still land on one cell when drawn alone.
		w = 1
	}
	return w
}

// StringWidth reports the number of terminal cells s occupies.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	total := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.StepString(s, state)
		total += Width(cluster)
	}
	return total
}

// IsSpace reports whether the cluster is whitespace, judged by its first
// rune.
func IsSpace(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r != utf8.RuneError && unicode.IsSpace(r)
}
