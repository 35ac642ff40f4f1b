package cascade

import "reflect"

// Kind is the runtime discriminant of an event value, used as the
// handler-table key. It is the dynamic concrete type of the event, not
// the static type an event happened to be passed as.
type Kind = reflect.Type

// KindOf returns the Kind for the event type T.
//
// Dispatch keys the handler lookup by the dynamic type of the event
// value, so a handler bound for KindOf[T]() fires for events dispatched
// as T values. Pointer and value types are distinct kinds.
func KindOf[T any]() Kind {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// kindOfValue returns the Kind of a concrete event value, or nil for a
// nil event.
func kindOfValue(event any) Kind {
	return reflect.TypeOf(event)
}
