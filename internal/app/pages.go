package app

import (
	"context"

	"github.com/NeuralMobile/event-cascade/internal/cascade"
	"github.com/NeuralMobile/event-cascade/internal/nav"
)

// bindShell installs the fallback handlers on the shell slot. These only
// fire when no page above them claims the event.
func (a *Application) bindShell() {
	cascade.On(a.reg, a.shell, func(ctx context.Context, ev QuitRequested) (bool, error) {
		a.quit = true
		return true, nil
	})
	cascade.On(a.reg, a.shell, func(ctx context.Context, ev TabCycleRequested) (bool, error) {
		a.tabs.Next()
		cur := a.tabs.Current()
		if cur == nil {
			// No tabs configured: nothing to cycle through.
			return false, nil
		}
		a.status = "switched to " + cur.Title()
		return true, nil
	})
	cascade.On(a.reg, a.shell, func(ctx context.Context, ev DetailRequested) (bool, error) {
		a.openDetail()
		return true, nil
	})
	cascade.On(a.reg, a.shell, func(ctx context.Context, ev BackRequested) (bool, error) {
		// Nothing above claimed it: there is nowhere to go back to.
		a.status = "already at the top"
		return true, nil
	})
}

// addTab creates a tab page and mounts its handlers.
func (a *Application) addTab(title string) *nav.Page {
	p := a.tabs.Add(title)
	nav.Handle(p, func(ctx context.Context, ev RefreshRequested) (bool, error) {
		a.refreshes[p.Title()]++
		a.status = "refreshed " + p.Title()
		return true, nil
	})
	return p
}

// openDetail pushes a detail page over the current location. The page
// claims back-navigation and refresh while it is the foreground one.
func (a *Application) openDetail() {
	title := "detail"
	if cur := a.tabs.Current(); cur != nil {
		title = cur.Title() + " / detail"
	}

	p := a.stack.Push(title)
	nav.Handle(p, func(ctx context.Context, ev BackRequested) (bool, error) {
		a.stack.Pop()
		a.status = "closed " + p.Title()
		return true, nil
	})
	nav.Handle(p, func(ctx context.Context, ev RefreshRequested) (bool, error) {
		a.refreshes[p.Title()]++
		a.status = "refreshed " + p.Title()
		return true, nil
	})
	a.status = "opened " + p.Title()
}
