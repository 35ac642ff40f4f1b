package app

// Typed events dispatched through the registry. The event's concrete
// type is its dispatch kind; payloads stay small because the handlers
// already close over their page.

// QuitRequested asks the application to shut down.
type QuitRequested struct{}

// BackRequested asks the foreground location to navigate back.
type BackRequested struct{}

// RefreshRequested asks the foreground location to reload its content.
type RefreshRequested struct{}

// TabCycleRequested asks the tab row to advance to the next tab.
type TabCycleRequested struct{}

// DetailRequested asks for a detail page over the current location.
type DetailRequested struct{}
