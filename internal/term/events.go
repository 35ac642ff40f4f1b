package term

// EventType identifies the kind of terminal event.
type EventType int

const (
	// EventNone is an event the backend could not classify.
	EventNone EventType = iota

	// EventKey is a key press.
	EventKey

	// EventResize is a terminal size change.
	EventResize
)

// Key identifies a non-rune key press.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event is a terminal event converted from tcell.
type Event struct {
	Type EventType

	// Key and Rune are set for EventKey. Rune is meaningful only when
	// Key is KeyRune.
	Key  Key
	Rune rune

	// Width and Height are set for EventResize.
	Width  int
	Height int
}
