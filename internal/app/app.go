// Package app wires the dispatch registry, the navigation containers,
// and the terminal backend into the demo application.
//
// The event loop polls the terminal, translates key presses into typed
// events via the keymap, and hands each one to the registry. Everything
// else - which page reacts, in what order, and where the cascade stops -
// falls out of the registry's recency ordering.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NeuralMobile/event-cascade/internal/cascade"
	"github.com/NeuralMobile/event-cascade/internal/config"
	"github.com/NeuralMobile/event-cascade/internal/nav"
	"github.com/NeuralMobile/event-cascade/internal/term"
)

// Application is the demo composition root.
type Application struct {
	logger       *slog.Logger
	settings     config.Settings
	settingsPath string
	theme        term.Theme
	keys         keymap

	screen *term.Screen
	reg    *cascade.Registry
	tabs   *nav.Tabs
	stack  *nav.Stack

	// shell is the oldest slot: the ultimate fallback for events no
	// page claims.
	shell cascade.Slot

	refreshes map[string]int
	status    string
	quit      bool
}

// New loads settings and builds the application, including the terminal
// backend.
func New(settingsPath string, logger *slog.Logger) (*Application, error) {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	theme, err := term.ParseTheme(settings.Theme.Foreground, settings.Theme.Background, settings.Theme.Accent)
	if err != nil {
		return nil, fmt.Errorf("app: bad theme: %w", err)
	}

	screen, err := term.NewScreen()
	if err != nil {
		return nil, err
	}

	a := newApplication(settings, logger)
	a.settingsPath = settingsPath
	a.theme = theme
	a.screen = screen
	return a, nil
}

// newApplication builds everything except the terminal backend. Tests
// use it to drive the dispatch wiring without a TTY.
func newApplication(settings config.Settings, logger *slog.Logger) *Application {
	a := &Application{
		logger:    logger,
		settings:  settings,
		keys:      newKeymap(settings.Keys),
		refreshes: make(map[string]int),
	}

	a.reg = cascade.New(
		cascade.WithLogger(logger),
		cascade.WithPanicHandler(func(event, recovered any, stack []byte) {
			logger.Error("handler panic", "event", fmt.Sprintf("%T", event), "value", recovered)
		}),
	)

	// The shell registers first so every page outranks it.
	a.shell = a.reg.Register(nil)
	a.bindShell()

	a.tabs = nav.NewTabs(a.reg)
	a.stack = nav.NewStack(a.reg)
	for _, title := range settings.Tabs {
		a.addTab(title)
	}
	a.tabs.Select(settings.LastTab)

	return a
}

// Run owns the terminal until quit.
func (a *Application) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()
	defer a.saveSelection()

	a.render()
	for !a.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ev := a.screen.PollEvent()
		switch ev.Type {
		case term.EventResize:
			a.render()
			continue
		case term.EventKey:
		default:
			continue
		}

		event := a.keys.translate(ev)
		if event == nil {
			continue
		}
		if _, err := a.reg.Dispatch(ctx, event); err != nil {
			return err
		}
		a.render()
	}

	return nil
}

// saveSelection persists the selected tab so the next session resumes
// there. It runs on every exit path, cancellation included, and a
// failure only costs the remembered selection.
func (a *Application) saveSelection() {
	if err := config.SaveLastTab(a.settingsPath, a.tabs.Index()); err != nil {
		a.logger.Warn("failed to save last tab", "path", a.settingsPath, "err", err)
	}
}

// render redraws the tab row, the foreground page, and the status line.
func (a *Application) render() {
	base := a.theme.Base()
	a.screen.Clear(base)

	x := 0
	for i, title := range a.tabs.Titles() {
		st := a.theme.Tab(i == a.tabs.Index())
		x = a.screen.SetText(x, 0, " "+term.Truncate(title, 16)+" ", st)
	}

	if top := a.stack.Top(); top != nil {
		a.screen.SetText(2, 2, top.Title(), base)
		a.screen.SetText(2, 4, "esc: back   r: refresh", base)
	} else if cur := a.tabs.Current(); cur != nil {
		a.screen.SetText(2, 2, cur.Title(), base)
		line := fmt.Sprintf("refreshed %d times", a.refreshes[cur.Title()])
		a.screen.SetText(2, 4, line, base)
		a.screen.SetText(2, 6, "enter: detail   tab: next   r: refresh   q: quit", base)
	}

	w, h := a.screen.Size()
	stats := a.reg.Stats()
	a.screen.FillRow(h-1, a.theme.Status())
	line := fmt.Sprintf(" %s | dispatched %d consumed %d dropped %d",
		a.status, stats.Dispatched, stats.Consumed, stats.Dropped)
	a.screen.SetText(0, h-1, term.Truncate(line, w), a.theme.Status())

	a.screen.Show()
}
