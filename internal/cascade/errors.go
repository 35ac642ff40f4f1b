package cascade

import "errors"

// Sentinel errors for the dispatch registry.
var (
	// ErrNilEvent is returned when Dispatch is given a nil event.
	ErrNilEvent = errors.New("cascade: nil event")

	// ErrHandlerPanic matches any PanicError via errors.Is.
	ErrHandlerPanic = errors.New("cascade: handler panicked")
)

// HandlerError wraps an error returned by a handler during dispatch.
// The walk stops at the faulting slot; no lower-priority slot is visited.
type HandlerError struct {
	// Slot is the slot whose handler failed.
	Slot Slot

	// Kind is the event kind being dispatched.
	Kind Kind

	// Err is the error the handler returned.
	Err error
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	return "cascade: handler for " + e.Kind.String() + " failed: " + e.Err.Error()
}

// Unwrap returns the handler's error.
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a panic raised by a handler during dispatch.
type PanicError struct {
	// Slot is the slot whose handler panicked.
	Slot Slot

	// Kind is the event kind being dispatched.
	Kind Kind

	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return "cascade: handler for " + e.Kind.String() + " panicked"
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
