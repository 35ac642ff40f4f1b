// Package term wraps the tcell terminal for the demo application.
//
// It exposes a small backend surface - init/teardown, sized cell writes,
// and a typed event poll - so the application loop never touches tcell
// directly. Styling goes through a Theme of colorful colors, and all text
// drawing and measuring is grapheme-cluster aware.
package term
