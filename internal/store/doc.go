// Package store records robot runs in SQLite.
//
// A run is identified by its run id. Each driven robot becomes one row in
// robots, each scent cell one row in scents. Both writes are idempotent:
// re-recording the same robot or cell in a run is a no-op.
//
// # Ordering
//
// All reads order by the logical seq stamped by the engine clock, never by
// insertion time, so two replays of the same input read back identically.
//
// The scenario harness opens the store at ":memory:"; the rovers command
// does not persist anything.
package store
