package nav

import "github.com/NeuralMobile/event-cascade/internal/cascade"

// Tabs is a tab-row container. Selecting a tab re-activates its slot, so
// the selected tab holds the first-refusal position while unselected tabs
// remain registered as fallbacks in the order they were last shown.
type Tabs struct {
	reg     *cascade.Registry
	tabs    []*Page
	current int
}

// NewTabs creates an empty tab row feeding the registry.
func NewTabs(reg *cascade.Registry) *Tabs {
	return &Tabs{reg: reg, current: -1}
}

// Add creates a tab page and registers its slot. The first tab added
// becomes the current one.
func (t *Tabs) Add(title string) *Page {
	p := newPage(t.reg, title)
	t.tabs = append(t.tabs, p)
	if t.current < 0 {
		t.current = 0
	}
	return p
}

// Select makes the tab at index the current one and re-activates its
// slot. Out-of-range indexes are ignored.
func (t *Tabs) Select(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.current = index
	t.reg.Activate(t.tabs[index].slot)
}

// Next cycles to the following tab, wrapping at the end.
func (t *Tabs) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.Select((t.current + 1) % len(t.tabs))
}

// Remove destroys the tab at index: detach, unregister, and - when the
// current tab was removed - select the nearest remaining neighbor.
func (t *Tabs) Remove(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}

	p := t.tabs[index]
	t.tabs = append(t.tabs[:index], t.tabs[index+1:]...)

	p.detach()
	t.reg.Unregister(p.slot)

	switch {
	case len(t.tabs) == 0:
		t.current = -1
	case index < t.current:
		t.current--
	case index == t.current:
		if t.current >= len(t.tabs) {
			t.current = len(t.tabs) - 1
		}
		t.reg.Activate(t.tabs[t.current].slot)
	}
}

// Current returns the selected tab, or nil when empty.
func (t *Tabs) Current() *Page {
	if t.current < 0 {
		return nil
	}
	return t.tabs[t.current]
}

// Index returns the selected tab's position, or -1 when empty.
func (t *Tabs) Index() int {
	return t.current
}

// Len returns the number of tabs.
func (t *Tabs) Len() int {
	return len(t.tabs)
}

// Titles returns the tab titles in display order.
func (t *Tabs) Titles() []string {
	titles := make([]string, len(t.tabs))
	for i, p := range t.tabs {
		titles[i] = p.Title()
	}
	return titles
}
