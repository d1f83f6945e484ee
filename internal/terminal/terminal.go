// Package terminal wraps tcell behind the drawing and event surface the
// editor uses. Text is drawn one grapheme cluster at a time so combining
// marks stay attached to their base cell.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/grapheme"
)

// Screen is a terminal display.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	sim    tcell.SimulationScreen
	inited bool
}

// New returns a Screen attached to the real terminal.
func New() (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: sc}, nil
}

// NewSimulation returns a Screen backed by an in-memory terminal.
// InjectKey, Resize, CellAt, and StyleAt drive and inspect it in tests.
func NewSimulation() *Screen {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Screen{screen: sim, sim: sim}
}

// Init prepares the terminal for drawing. It must be called before any
// other method. Calling it on a screen that is already initialized is a
// no-op.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.inited = true
	return nil
}

// Fini releases the terminal and restores its previous state. Calling
// it more than once is a no-op.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inited {
		return
	}
	s.inited = false
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

// Clear erases the whole screen with the default style.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
}

// Show flushes pending changes to the display.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Show()
}

// ShowCursor positions and displays the cursor.
func (s *Screen) ShowCursor(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.ShowCursor(x, y)
}

// HideCursor hides the cursor.
func (s *Screen) HideCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.HideCursor()
}

// HasTrueColor reports whether the terminal supports 24-bit color.
func (s *Screen) HasTrueColor() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Colors() > 256
}

// SetCluster draws one grapheme cluster at cell (x, y) and returns the
// number of columns it occupies.
func (s *Screen) SetCluster(x, y int, cluster string, style Style) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setCluster(x, y, cluster, style)
}

func (s *Screen) setCluster(x, y int, cluster string, style Style) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		s.screen.SetContent(x, y, ' ', nil, convertStyle(style))
		return 1
	}
	s.screen.SetContent(x, y, runes[0], runes[1:], convertStyle(style))
	return grapheme.Width(cluster)
}

// SetText draws text left to right starting at cell (x, y) and returns
// the column after the last cluster drawn.
func (s *Screen) SetText(x, y int, text string, style Style) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cluster := range grapheme.Split(text) {
		x += s.setCluster(x, y, cluster, style)
	}
	return x
}

// PollEvent blocks until the next terminal event. After Fini it returns
// an EventQuit event.
func (s *Screen) PollEvent() Event {
	ev := s.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventQuit}
	}
	return convertEvent(ev)
}

// Post schedules fn to run on the goroutine consuming PollEvent. It is
// safe to call from any goroutine.
func (s *Screen) Post(fn func()) {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(fn)) // best-effort; event queue may be full
}

// InjectKey feeds a key event into a simulation screen.
func (s *Screen) InjectKey(key Key, r rune) {
	if s.sim == nil {
		return
	}
	s.sim.InjectKey(convertToTcellKey(key), r, tcell.ModNone)
}

// InjectRune feeds a character keypress into a simulation screen.
func (s *Screen) InjectRune(r rune) {
	s.InjectKey(KeyRune, r)
}

// Resize changes the size of a simulation screen.
func (s *Screen) Resize(width, height int) {
	if s.sim == nil {
		return
	}
	s.sim.SetSize(width, height)
}

// CellAt returns the cluster drawn at cell (x, y).
func (s *Screen) CellAt(x, y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	mainc, combc, _, _ := s.screen.GetContent(x, y)
	return string(append([]rune{mainc}, combc...))
}

// StyleAt returns the colors of the cell at (x, y).
func (s *Screen) StyleAt(x, y int) Style {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, st, _ := s.screen.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return Style{Foreground: convertTcellColor(fg), Background: convertTcellColor(bg)}
}
