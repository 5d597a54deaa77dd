// Package engine implements the rovers simulation.
//
// The engine consumes the input line stream, builds a Grid from the first
// line, then drives one robot per (position, script) pair and yields one
// Result per robot.
//
// ARCHITECTURE:
//
// Single-Writer Loop:
// Robots are processed strictly in input order on the caller's goroutine.
// The Grid's scent set is the only state shared between robots, so a later
// robot observes scents left by an earlier one but never the reverse.
//
// Processing Flow:
//  1. Driver.Results pulls lines lazily, skipping blank ones
//  2. The first line becomes the Grid (fatal on error)
//  3. Each following pair is parsed, then folded through Run
//  4. Run is pure: Step reads the scent set, never writes it
//  5. The Driver commits MarkScent for a Lost outcome before yielding
//
// CRITICAL PATTERNS:
//
// Logical Clock:
// Every Result and trace Event is stamped with a seq from Sequencer.Next().
// No wall-clock timestamps.
//
// Explicit Loss:
// A lost robot is ir.Outcome{Status: ir.Lost} at its last on-grid pose.
// Off-grid coordinates are computed transiently and never stored.
package engine
