package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Screen is the terminal backend. All drawing goes through it; the
// application never sees tcell types.
type Screen struct {
	tc tcell.Screen
	mu sync.Mutex
}

// NewScreen creates a screen backed by the process terminal.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// Init takes over the terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tc.Init()
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tc.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tc.Size()
}

// Clear fills the screen with the style's background.
func (s *Screen) Clear(st Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tc.Fill(' ', st.tcellStyle())
}

// Show flushes pending writes to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tc.Show()
}

// SetText draws a string starting at (x, y) and returns the x position
// after the final cell. Grapheme clusters are written whole: the first
// rune carries the cell, the rest ride along as combining runes.
func (s *Screen) SetText(x, y int, text string, st Style) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := st.tcellStyle()
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		s.tc.SetContent(x, y, runes[0], comb, style)
		x += g.Width()
	}
	return x
}

// FillRow paints a full row with the style's background.
func (s *Screen) FillRow(y int, st Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := st.tcellStyle()
	width, _ := s.tc.Size()
	for x := 0; x < width; x++ {
		s.tc.SetContent(x, y, ' ', nil, style)
	}
}

// PollEvent blocks for the next terminal event.
func (s *Screen) PollEvent() Event {
	return convertEvent(s.tc.PollEvent())
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts tcell keys to our Key type.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyCtrlC:
		return KeyCtrlC
	default:
		return KeyNone
	}
}
