package cascade

// Slot is an opaque handle for one registered UI location. Slots are
// allocated by Register and compared only by identity; a Slot carries no
// meaning outside the Registry that issued it.
//
// A stale Slot - one whose location has been unregistered - remains a
// valid argument to every operation. Binding handlers to a stale slot is
// legal but dispatch-ineligible until the slot is activated again.
type Slot uint64

// NoSlot is the zero Slot. It is never issued by Register.
const NoSlot Slot = 0

// Liveness reports whether a slot's owning UI location is still attached
// to the live tree. Dispatch consults it when building the candidate
// snapshot; a false result excludes the slot even though its recency and
// handler entries still exist. A nil Liveness means always live.
//
// Probes are invoked outside the registry lock, so a probe may safely
// call back into the registry.
type Liveness func() bool
