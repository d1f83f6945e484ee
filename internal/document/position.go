// Package document implements the text buffer quill edits: an ordered
// list of rows addressed by grapheme cluster, with incremental syntax
// highlighting, search, and file persistence.
package document

// Position addresses a single grapheme cluster in a document. X is the
// cluster index within the row and Y is the row index, both zero-based.
// Y may equal the row count: that is the phantom line a caret rests on
// past the final row. The zero value is the start of the document.
type Position struct {
	X int
	Y int
}

// Compare orders two positions in document order. It returns -1 when p
// precedes other, 0 when they are equal, and 1 when p follows other.
func (p Position) Compare(other Position) int {
	if p.Y != other.Y {
		if p.Y < other.Y {
			return -1
		}
		return 1
	}
	if p.X != other.X {
		if p.X < other.X {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether p precedes other in document order.
func (p Position) Before(other Position) bool { return p.Compare(other) < 0 }

// After reports whether p follows other in document order.
func (p Position) After(other Position) bool { return p.Compare(other) > 0 }

// Direction selects which way a search walks the document.
type Direction uint8

const (
	// Forward searches toward the end of the document.
	Forward Direction = iota
	// Backward searches toward the start of the document.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
