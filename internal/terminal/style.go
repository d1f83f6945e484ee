package terminal

import "github.com/gdamore/tcell/v2"

// Color is a 24-bit terminal color. The zero value selects the
// terminal's own default color.
type Color struct {
	r, g, b uint8
	set     bool
}

// RGB returns an explicit 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, set: true}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return !c.set
}

// Style pairs the foreground and background colors of a drawn cell.
type Style struct {
	Foreground Color
	Background Color
}

// convertStyle converts a Style to tcell.Style.
func convertStyle(st Style) tcell.Style {
	ts := tcell.StyleDefault
	if !st.Foreground.IsDefault() {
		ts = ts.Foreground(tcell.NewRGBColor(int32(st.Foreground.r), int32(st.Foreground.g), int32(st.Foreground.b)))
	}
	if !st.Background.IsDefault() {
		ts = ts.Background(tcell.NewRGBColor(int32(st.Background.r), int32(st.Background.g), int32(st.Background.b)))
	}
	return ts
}

// convertTcellColor converts a tcell.Color back to Color.
func convertTcellColor(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return Color{}
	}
	r, g, b := tc.RGB()
	return RGB(uint8(r), uint8(g), uint8(b))
}
