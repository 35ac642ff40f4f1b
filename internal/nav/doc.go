// Package nav is the lifecycle adapter between a navigable UI tree and
// the dispatch registry.
//
// It owns the three registry signals: a page registers its slot when it
// is created, activates it whenever it becomes the foreground location
// (initial show, return via back-navigation, tab reselect), and
// unregisters it when it is permanently destroyed. Each page's liveness
// probe reports whether the page is still attached to a Stack or Tabs
// container, which lets the registry skip pages whose teardown is still
// in flight.
//
// The package assumes the single UI event loop the registry is designed
// for: Stack and Tabs are not safe for concurrent mutation.
package nav
