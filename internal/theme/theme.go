// Package theme defines the editor's color schemes. A theme assigns an
// RGB color to every highlight class plus the chrome around the text:
// status bar, message bar, and visual selection. Themes are held in a
// Registry seeded with builtins and extended by YAML files from the
// user's configuration directory.
package theme

import "github.com/dshills/quill/internal/highlight"

// Color is a 24-bit RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Theme is one named color scheme.
type Theme struct {
	// Name is the identifier used in configuration.
	Name string

	// Foreground is the default text color, used for the None class and
	// as the fallback for classes the theme leaves unset.
	Foreground Color

	// Colors maps highlight classes to their text colors.
	Colors map[highlight.Type]Color

	// Selection is the background of the visual-mode selection.
	Selection Color

	// StatusForeground and StatusBackground color the status bar.
	StatusForeground Color
	StatusBackground Color
}

// ColorFor returns the text color for a highlight class, falling back
// to the theme's foreground.
func (t *Theme) ColorFor(tag highlight.Type) Color {
	if c, ok := t.Colors[tag]; ok {
		return c
	}
	return t.Foreground
}
