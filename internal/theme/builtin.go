package theme

import "github.com/dshills/quill/internal/highlight"

// Classic is the default scheme: white text on the terminal's own
// background with the pastel token palette quill has always shipped.
func Classic() *Theme {
	return &Theme{
		Name:       "classic",
		Foreground: Color{255, 255, 255},
		Colors: map[highlight.Type]Color{
			highlight.Number:           {255, 222, 173},
			highlight.Match:            {38, 139, 210},
			highlight.String:           {211, 54, 130},
			highlight.Character:        {108, 113, 196},
			highlight.Comment:          {46, 139, 87},
			highlight.MultilineComment: {46, 139, 87},
			highlight.PrimaryKeyword:   {221, 160, 221},
			highlight.SecondaryKeyword: {255, 250, 205},
		},
		Selection:        Color{64, 64, 128},
		StatusForeground: Color{63, 63, 63},
		StatusBackground: Color{239, 239, 239},
	}
}

// Midnight is a high-contrast dark scheme.
func Midnight() *Theme {
	return &Theme{
		Name:       "midnight",
		Foreground: Color{248, 248, 242},
		Colors: map[highlight.Type]Color{
			highlight.Number:           {189, 147, 249},
			highlight.Match:            {80, 250, 123},
			highlight.String:           {241, 250, 140},
			highlight.Character:        {255, 184, 108},
			highlight.Comment:          {98, 114, 164},
			highlight.MultilineComment: {98, 114, 164},
			highlight.PrimaryKeyword:   {255, 121, 198},
			highlight.SecondaryKeyword: {139, 233, 253},
		},
		Selection:        Color{68, 71, 90},
		StatusForeground: Color{40, 42, 54},
		StatusBackground: Color{189, 147, 249},
	}
}

// Parchment is a light scheme for bright terminals.
func Parchment() *Theme {
	return &Theme{
		Name:       "parchment",
		Foreground: Color{0, 0, 0},
		Colors: map[highlight.Type]Color{
			highlight.Number:           {9, 134, 88},
			highlight.Match:            {203, 75, 22},
			highlight.String:           {163, 21, 21},
			highlight.Character:        {0, 112, 193},
			highlight.Comment:          {0, 128, 0},
			highlight.MultilineComment: {0, 128, 0},
			highlight.PrimaryKeyword:   {0, 0, 255},
			highlight.SecondaryKeyword: {38, 127, 153},
		},
		Selection:        Color{173, 214, 255},
		StatusForeground: Color{239, 239, 239},
		StatusBackground: Color{63, 63, 63},
	}
}
