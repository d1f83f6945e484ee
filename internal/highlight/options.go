package highlight

// Options selects which classifiers Scan applies to a row. A file type
// carries one Options value; a zero Options highlights nothing.
type Options struct {
	// Numbers enables tagging of numeric literals.
	Numbers bool
	// Strings enables tagging of double-quoted string literals.
	Strings bool
	// Characters enables tagging of single-quoted character literals.
	Characters bool
	// Comments enables tagging of // line comments.
	Comments bool
	// MultilineComments enables tagging of /* */ block comments,
	// including their continuation across rows.
	MultilineComments bool
	// PrimaryKeywords lists words tagged with the primary keyword class.
	PrimaryKeywords []string
	// SecondaryKeywords lists words tagged with the secondary keyword
	// class, typically type names.
	SecondaryKeywords []string
}
