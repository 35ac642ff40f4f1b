package cascade

import (
	"sync/atomic"
	"time"
)

// statsCounters holds the registry's dispatch counters. Counters are
// atomics so Dispatch never takes the table lock just to count.
type statsCounters struct {
	dispatched atomic.Uint64
	consumed   atomic.Uint64
	dropped    atomic.Uint64
	invoked    atomic.Uint64
	failed     atomic.Uint64
	panicked   atomic.Uint64
	totalNs    atomic.Int64
}

// Stats is a point-in-time snapshot of registry activity.
type Stats struct {
	// Dispatched is the total number of Dispatch calls.
	Dispatched uint64

	// Consumed is the number of dispatches a handler claimed.
	Consumed uint64

	// Dropped is the number of dispatches no handler claimed, including
	// walks stopped by context cancellation.
	Dropped uint64

	// HandlersInvoked is the total number of handler invocations.
	HandlersInvoked uint64

	// HandlerErrors is the number of handlers that returned errors.
	HandlerErrors uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// TotalHandlerTime is the cumulative time spent in handlers.
	TotalHandlerTime time.Duration

	// AvgHandlerTime is the average handler execution time.
	AvgHandlerTime time.Duration

	// RegisteredSlots is the current number of registered slots.
	RegisteredSlots int
}

// Stats returns a snapshot of dispatch statistics. Counter reads are not
// mutually atomic, so values may be slightly inconsistent against
// concurrent dispatches.
func (r *Registry) Stats() Stats {
	invoked := r.stats.invoked.Load()
	totalNs := r.stats.totalNs.Load()

	var avgNs int64
	if invoked > 0 {
		avgNs = totalNs / int64(invoked)
	}

	return Stats{
		Dispatched:       r.stats.dispatched.Load(),
		Consumed:         r.stats.consumed.Load(),
		Dropped:          r.stats.dropped.Load(),
		HandlersInvoked:  invoked,
		HandlerErrors:    r.stats.failed.Load(),
		HandlerPanics:    r.stats.panicked.Load(),
		TotalHandlerTime: time.Duration(totalNs),
		AvgHandlerTime:   time.Duration(avgNs),
		RegisteredSlots:  r.Slots(),
	}
}
