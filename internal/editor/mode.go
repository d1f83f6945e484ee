package editor

// Mode selects how keystrokes are interpreted.
type Mode int

const (
	// ModeNormal navigates and dispatches single-key commands.
	ModeNormal Mode = iota
	// ModeInsert types text into the document.
	ModeInsert
	// ModeVisual extends a selection from an anchor position.
	ModeVisual
)

// String returns the status-bar name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}
