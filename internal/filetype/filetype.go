// Package filetype maps filenames to syntax highlighting configuration.
// A FileType names a language, the extensions that select it, and the
// highlight options the scanner applies to its rows. Types are looked
// up through a Registry seeded with builtin languages and extended by
// TOML definitions from the user's configuration directory.
package filetype

import "github.com/dshills/quill/internal/highlight"

// FileType describes one language.
type FileType struct {
	// Name is the display name shown in the status bar.
	Name string
	// Extensions lists filename extensions, with or without the leading
	// dot, that select this type.
	Extensions []string
	// Options selects the highlight classes applied to this type's rows.
	Options highlight.Options
}

// Plain is the fallback for unknown extensions. Nothing is highlighted.
func Plain() *FileType {
	return &FileType{Name: "plain"}
}
