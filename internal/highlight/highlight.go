// Package highlight classifies rows of text into highlight classes.
//
// Classification is row-oriented: Scan walks one row's grapheme clusters
// and produces one class tag per cluster. The only state that crosses
// rows is whether a row ends inside an unterminated block comment.
// Callers thread the returned State of one row into Scan for the next,
// so a /* opened on row 3 colors rows 4 and 5 until its */ closes it.
package highlight

// Type identifies the highlight class of a single grapheme cluster.
type Type uint8

const (
	// None marks text with no special class.
	None Type = iota
	// Number marks numeric literals.
	Number
	// Match marks occurrences of an active search query.
	Match
	// String marks double-quoted string literals.
	String
	// Character marks single-quoted character literals.
	Character
	// Comment marks line comments.
	Comment
	// MultilineComment marks block comments, including unterminated ones.
	MultilineComment
	// PrimaryKeyword marks the file type's primary keyword class.
	PrimaryKeyword
	// SecondaryKeyword marks the file type's secondary keyword class.
	SecondaryKeyword
)

var typeNames = [...]string{
	None:             "none",
	Number:           "number",
	Match:            "match",
	String:           "string",
	Character:        "character",
	Comment:          "comment",
	MultilineComment: "mlcomment",
	PrimaryKeyword:   "primary_keyword",
	SecondaryKeyword: "secondary_keyword",
}

// String returns the lowercase name of the highlight class.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// State carries block-comment context between consecutive rows.
type State uint8

const (
	// StateNormal means the row ended outside any block comment.
	StateNormal State = iota
	// StateComment means the row ended inside an unterminated block
	// comment that the next row must resume.
	StateComment
)

// String returns a short name for the state.
func (s State) String() string {
	if s == StateComment {
		return "comment"
	}
	return "normal"
}
