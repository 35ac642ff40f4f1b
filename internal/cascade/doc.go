// Package cascade provides the hierarchical event-dispatch registry for
// tree-structured UIs.
//
// The registry tracks a dynamic set of slots - opaque handles standing in
// for mounted UI locations - ordered by how recently each one was shown.
// Dispatching an event walks the live slots from most-recently-activated
// to least, offering the event to each slot's handler for that event kind
// until one handler consumes it.
//
// # Model
//
// Two tables back the registry:
//
//   - recency: slot -> last-activation instant. Seeded by Register,
//     refreshed by Activate.
//   - handlers: event kind -> slot -> handler. Populated by Bind,
//     drained by Unbind and Unregister.
//
// The effective dispatch order is recomputed from live activation history
// on every Dispatch call, so it self-adjusts as the UI navigates: the
// foreground location gets first refusal on every event, with backgrounded
// locations acting as fallbacks. No static hierarchy is declared anywhere.
//
// # Lifecycle signals
//
// The adapter layer that owns the UI tree sends three signals:
//
//	p.slot = reg.Register(p.live) // location created
//	reg.Activate(p.slot)          // location became the foreground one
//	reg.Unregister(p.slot)        // location permanently destroyed
//
// Handlers are bound independently of activation, usually when the
// location mounts its typed callbacks:
//
//	cascade.On(reg, p.slot, func(ctx context.Context, ev RefreshRequested) (bool, error) {
//	    reload()
//	    return true, nil // consumed; the walk stops here
//	})
//
// # Dispatch contract
//
// Dispatch snapshots the candidate slots up front and then walks them.
// Registry mutations that interleave with a suspended handler affect only
// the per-slot handler lookups that have not happened yet; a slot
// unregistered mid-walk simply misses its lookup. A slot whose liveness
// probe reports false is excluded from the snapshot even though its table
// entries still exist - teardown ordering is allowed to be asynchronous.
//
// A handler error or panic aborts the remainder of the walk and surfaces
// to the Dispatch caller; the registry makes no attempt to continue past
// a faulting handler. An event no handler claims is silently dropped.
//
// # Thread safety
//
// All operations are safe for concurrent use. The intended embedding is a
// single UI event loop, so the registry does not order concurrent
// Dispatch calls against each other - if two in-flight events must be
// serialized, that is the caller's job.
package cascade
