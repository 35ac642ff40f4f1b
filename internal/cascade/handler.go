package cascade

import "context"

// Handler is the interface for event handlers.
//
// Handle receives a type-erased event and reports whether it consumed it.
// A true result halts the dispatch walk; false passes the event on to the
// next slot in recency order. Handle may block (network, storage) before
// returning - a synchronous handler is simply one that never does.
type Handler interface {
	Handle(ctx context.Context, event any) (consumed bool, err error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) (bool, error)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) (bool, error) {
	return f(ctx, event)
}

// On binds a typed handler for events of kind T to the given slot,
// replacing any prior handler for that (slot, kind) pair. The wrapper
// guarantees fn only ever sees events whose dynamic type is T.
func On[T any](r *Registry, s Slot, fn func(ctx context.Context, ev T) (bool, error)) {
	r.Bind(s, KindOf[T](), HandlerFunc(func(ctx context.Context, event any) (bool, error) {
		ev, ok := event.(T)
		if !ok {
			// Dispatch keys lookups by dynamic type, so this cannot
			// fire for a mismatched event; skip rather than fault.
			return false, nil
		}
		return fn(ctx, ev)
	}))
}

// Off removes the slot's handler for kind T, if any.
func Off[T any](r *Registry, s Slot) {
	r.Unbind(s, KindOf[T]())
}
