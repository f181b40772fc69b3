// Package store provides SQLite-backed history of recovery runs.
//
// Every invocation of the recover command is recorded as a run: the
// observations it was given, the recovered parameters or the failure code,
// and a logical sequence number.
//
// # Ordering
//
// Listings use the seq column (a logical counter), never wall-clock time,
// with id as a tie-breaker: ORDER BY seq DESC, id ASC COLLATE BINARY.
//
// # Encoding
//
// Observations are stored as canonical JSON arrays of decimal strings
// (see internal/ir). Parameters are decimal TEXT so moduli wider than
// 64 bits round-trip exactly.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
