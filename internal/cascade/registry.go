package cascade

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// recencyEntry records when a slot was last activated. The sequence
// number is a registry-wide monotonic counter that breaks timestamp ties
// deterministically (two activations inside one clock tick).
type recencyEntry struct {
	at  time.Time
	seq uint64
}

// Registry is the hierarchical dispatch registry. It owns the recency
// table, the per-kind handler tables, and the liveness probes supplied
// at registration. Construct instances with New; there is no package
// global, so independent registries can coexist (one per test, one per
// application).
type Registry struct {
	mu       sync.Mutex
	nextSlot Slot
	nextSeq  uint64
	recency  map[Slot]recencyEntry
	probes   map[Slot]Liveness
	handlers map[Kind]map[Slot]Handler

	clock  func() time.Time
	logger *slog.Logger
	exec   executor

	stats statsCounters
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		recency:  make(map[Slot]recencyEntry),
		probes:   make(map[Slot]Liveness),
		handlers: make(map[Kind]map[Slot]Handler),
		clock:    time.Now,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register allocates a slot for a newly created UI location and seeds its
// recency entry with the current instant. The liveness probe is consulted
// on every dispatch; nil means always live.
func (r *Registry) Register(live Liveness) Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSlot++
	s := r.nextSlot
	r.touchLocked(s)
	if live != nil {
		r.probes[s] = live
	}
	return s
}

// Reattach re-registers an existing or stale slot, refreshing its recency
// entry and replacing its liveness probe. Registering a slot that is
// already registered is an update, not an error.
func (r *Registry) Reattach(s Slot, live Liveness) {
	if s == NoSlot {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.touchLocked(s)
	if live != nil {
		r.probes[s] = live
	} else {
		delete(r.probes, s)
	}
}

// Activate refreshes the slot's recency entry with the current instant,
// making it the most-recent candidate for subsequent dispatches. Handler
// bindings are untouched. Activating a slot that was never registered, or
// was unregistered, implicitly re-registers it.
func (r *Registry) Activate(s Slot) {
	if s == NoSlot {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.touchLocked(s)
}

// touchLocked overwrites the slot's recency entry with "now".
func (r *Registry) touchLocked(s Slot) {
	r.nextSeq++
	r.recency[s] = recencyEntry{at: r.clock(), seq: r.nextSeq}
}

// Unregister removes the slot's recency entry, liveness probe, and every
// per-kind handler binding, pruning kind tables that become empty.
// Idempotent: unregistering twice, or unregistering a slot that was never
// registered, is a no-op.
func (r *Registry) Unregister(s Slot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.recency, s)
	delete(r.probes, s)
	for kind, bySlot := range r.handlers {
		delete(bySlot, s)
		if len(bySlot) == 0 {
			delete(r.handlers, kind)
		}
	}
}

// Bind associates a handler with the (slot, kind) pair, silently
// replacing any prior handler for that exact pair. The slot does not need
// to be registered yet; the binding stays dispatch-ineligible until the
// slot is registered or activated.
func (r *Registry) Bind(s Slot, kind Kind, h Handler) {
	if s == NoSlot || kind == nil || h == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bySlot := r.handlers[kind]
	if bySlot == nil {
		bySlot = make(map[Slot]Handler)
		r.handlers[kind] = bySlot
	}
	bySlot[s] = h
}

// Unbind removes the slot's handler for the kind, if present. No-op when
// absent.
func (r *Registry) Unbind(s Slot, kind Kind) {
	if kind == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bySlot := r.handlers[kind]
	delete(bySlot, s)
	if len(bySlot) == 0 {
		delete(r.handlers, kind)
	}
}

// IsRegistered reports whether the slot currently has a recency entry.
func (r *Registry) IsRegistered(s Slot) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.recency[s]
	return ok
}

// Slots returns the number of registered slots.
func (r *Registry) Slots() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.recency)
}

// Bindings returns the number of slots holding a handler for the kind.
func (r *Registry) Bindings(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handlers[kind])
}

// candidate is one slot in the dispatch snapshot.
type candidate struct {
	slot Slot
	at   time.Time
	seq  uint64
	live Liveness
}

// Dispatch offers the event to the live slots in recency order - most
// recently activated first - until one handler consumes it.
//
// The candidate list is a snapshot taken at dispatch start. Registry
// mutations that interleave with a blocking handler affect only the
// per-slot handler lookups still to come: a slot unregistered mid-walk
// misses its lookup and is skipped. A slot with no handler for the
// event's kind is skipped without ending the walk.
//
// The first handler returning true consumes the event and Dispatch
// returns (true, nil). A handler error or panic aborts the walk and is
// returned as a *HandlerError or *PanicError. If no handler claims the
// event it is silently dropped: (false, nil). Dispatch imposes no timeout
// of its own, but a cancelled ctx stops the walk between handlers; the
// event counts as dropped since no handler claimed it.
func (r *Registry) Dispatch(ctx context.Context, event any) (bool, error) {
	if event == nil {
		return false, ErrNilEvent
	}
	kind := kindOfValue(event)

	r.stats.dispatched.Add(1)

	r.mu.Lock()
	if len(r.handlers[kind]) == 0 {
		r.mu.Unlock()
		r.stats.dropped.Add(1)
		return false, nil
	}
	cands := make([]candidate, 0, len(r.recency))
	for s, ent := range r.recency {
		cands = append(cands, candidate{slot: s, at: ent.at, seq: ent.seq, live: r.probes[s]})
	}
	r.mu.Unlock()

	// Probes run outside the lock so they may call back into the registry.
	live := cands[:0]
	for _, c := range cands {
		if c.live == nil || c.live() {
			live = append(live, c)
		}
	}

	sort.Slice(live, func(i, j int) bool {
		if !live[i].at.Equal(live[j].at) {
			return live[i].at.After(live[j].at)
		}
		return live[i].seq > live[j].seq
	})

	log := r.logger.With("dispatch", ulid.Make().String(), "kind", kind.String())
	log.Debug("dispatch start", "candidates", len(live))

	for _, c := range live {
		select {
		case <-ctx.Done():
			r.stats.dropped.Add(1)
			return false, ctx.Err()
		default:
		}

		r.mu.Lock()
		h := r.handlers[kind][c.slot]
		r.mu.Unlock()
		if h == nil {
			// Normal: not every visible location handles every kind.
			continue
		}

		res := r.exec.run(ctx, event, h)
		r.stats.invoked.Add(1)
		r.stats.totalNs.Add(res.duration.Nanoseconds())

		switch {
		case res.panicked:
			r.stats.panicked.Add(1)
			log.Error("handler panicked", "slot", uint64(c.slot), "value", res.panicValue)
			return false, &PanicError{Slot: c.slot, Kind: kind, Value: res.panicValue, Stack: res.panicStack}
		case res.err != nil:
			r.stats.failed.Add(1)
			log.Error("handler failed", "slot", uint64(c.slot), "err", res.err)
			return false, &HandlerError{Slot: c.slot, Kind: kind, Err: res.err}
		case res.consumed:
			r.stats.consumed.Add(1)
			log.Debug("event consumed", "slot", uint64(c.slot))
			return true, nil
		}
	}

	r.stats.dropped.Add(1)
	log.Debug("event dropped")
	return false, nil
}
