package cascade

import (
	"context"
	"runtime/debug"
	"time"
)

// PanicHandler observes handler panics before they are returned to the
// Dispatch caller as a *PanicError. It is for logging and crash
// reporting; it cannot suppress the fault.
type PanicHandler func(event any, recovered any, stack []byte)

// result captures the outcome of one handler invocation.
type result struct {
	consumed   bool
	err        error
	panicked   bool
	panicValue any
	panicStack []byte
	duration   time.Duration
}

// executor runs handlers with panic recovery and timing.
type executor struct {
	onPanic PanicHandler
}

// run invokes a handler with the given event and returns the result.
func (e *executor) run(ctx context.Context, event any, h Handler) (res result) {
	start := time.Now()

	defer func() {
		res.duration = time.Since(start)

		if r := recover(); r != nil {
			stack := debug.Stack()

			res.consumed = false
			res.panicked = true
			res.panicValue = r
			res.panicStack = stack

			// Protect the observer call - it must not crash the process.
			if e.onPanic != nil {
				func() {
					defer func() {
						_ = recover()
					}()
					e.onPanic(event, r, stack)
				}()
			}
		}
	}()

	res.consumed, res.err = h.Handle(ctx, event)
	return res
}
