package app

import (
	"github.com/NeuralMobile/event-cascade/internal/config"
	"github.com/NeuralMobile/event-cascade/internal/term"
)

// keymap translates terminal key events into typed registry events.
type keymap struct {
	quit    rune
	back    rune
	refresh rune
}

func newKeymap(k config.Keybinds) keymap {
	return keymap{quit: k.Quit, back: k.Back, refresh: k.Refresh}
}

// translate returns the typed event for a key press, or nil when the key
// is unbound.
func (m keymap) translate(ev term.Event) any {
	if ev.Type != term.EventKey {
		return nil
	}

	switch ev.Key {
	case term.KeyCtrlC:
		return QuitRequested{}
	case term.KeyEscape:
		return BackRequested{}
	case term.KeyTab:
		return TabCycleRequested{}
	case term.KeyEnter:
		return DetailRequested{}
	case term.KeyRune:
		switch ev.Rune {
		case m.quit:
			return QuitRequested{}
		case m.back:
			return BackRequested{}
		case m.refresh:
			return RefreshRequested{}
		}
	}
	return nil
}
