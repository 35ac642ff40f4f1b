package nav

import (
	"context"

	"github.com/NeuralMobile/event-cascade/internal/cascade"
)

// Page is one UI location: a pushed screen or a tab. Pages are created by
// Stack.Push and Tabs.Add, never directly.
type Page struct {
	title    string
	slot     cascade.Slot
	reg      *cascade.Registry
	attached bool
}

func newPage(reg *cascade.Registry, title string) *Page {
	p := &Page{title: title, reg: reg, attached: true}
	p.slot = reg.Register(p.Attached)
	return p
}

// Title returns the page title.
func (p *Page) Title() string {
	return p.title
}

// Slot returns the page's registry slot.
func (p *Page) Slot() cascade.Slot {
	return p.slot
}

// Attached reports whether the page is still part of the live UI tree.
// It doubles as the page's liveness probe.
func (p *Page) Attached() bool {
	return p.attached
}

// detach marks the page as removed from the live tree. Dispatch stops
// considering the page immediately, even before Unregister runs.
func (p *Page) detach() {
	p.attached = false
}

// Handle binds a typed handler for events of kind T to the page,
// replacing any prior handler the page held for that kind.
func Handle[T any](p *Page, fn func(ctx context.Context, ev T) (bool, error)) {
	cascade.On(p.reg, p.slot, fn)
}

// Unhandle removes the page's handler for kind T, if any.
func Unhandle[T any](p *Page) {
	cascade.Off[T](p.reg, p.slot)
}
